package content

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMigrateAboutLegacyStrings(t *testing.T) {
	legacy := Document{
		"name":       "Ana",
		"fullName":   "Silva",
		"bio":        []any{"um", "dois", "três"},
		"stats":      []any{map[string]any{"value": "5+", "label": "Anos"}},
		"highlights": []any{map[string]any{"title": "T", "description": "D"}},
	}

	migrated := migrateAbout(legacy)

	bio, _ := migrated["bio"].([]any)
	if len(bio) != 3 {
		t.Fatalf("expected 3 bio items, got %d", len(bio))
	}
	for i, v := range bio {
		item, _ := v.(map[string]any)
		if item["id"] != strconv.Itoa(i+1) {
			t.Errorf("bio[%d]: expected id %q, got %v", i, strconv.Itoa(i+1), item["id"])
		}
	}

	stats, _ := migrated["stats"].([]any)
	stat, _ := stats[0].(map[string]any)
	if stat["id"] != "1" || stat["value"] != "5+" {
		t.Errorf("unexpected migrated stat: %v", stat)
	}
}

func TestMigrateAboutPreservesOrder(t *testing.T) {
	texts := []any{"primeiro", "segundo", "terceiro", "quarto"}
	migrated := migrateAbout(Document{"bio": texts, "stats": []any{}, "highlights": []any{}})
	bio, _ := migrated["bio"].([]any)
	for i, v := range bio {
		item, _ := v.(map[string]any)
		if item["text"] != texts[i] {
			t.Errorf("bio[%d]: order not preserved, got %v", i, item["text"])
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	inputs := []Document{
		{
			"name":       "Ana",
			"bio":        []any{"um", "dois"},
			"stats":      []any{map[string]any{"value": "1", "label": "x"}},
			"highlights": []any{},
		},
		defaultAbout(),
	}
	for i, input := range inputs {
		once := migrateAbout(Clone(input))
		twice := migrateAbout(Clone(once))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("case %d: migrateAbout not idempotent:\nonce:  %v\ntwice: %v", i, once, twice)
		}
	}
}

func TestMigrateEducationLegacyCertifications(t *testing.T) {
	legacy := Document{
		"education":      []any{map[string]any{"id": "1", "degree": "Eng"}},
		"certifications": []any{"React", "Node"},
	}

	migrated := migrateEducation(legacy)

	certs, _ := migrated["certifications"].([]any)
	if len(certs) != 2 {
		t.Fatalf("expected 2 certifications, got %d", len(certs))
	}
	first, _ := certs[0].(map[string]any)
	if first["id"] != "1" || first["name"] != "React" {
		t.Errorf("unexpected migrated certification: %v", first)
	}

	if again := migrateEducation(Clone(migrated)); !reflect.DeepEqual(migrated, again) {
		t.Error("migrateEducation not idempotent")
	}
}

func TestMigrateEducationCurrentShapeUnchanged(t *testing.T) {
	current := defaultEducation()
	if migrated := migrateEducation(Clone(current)); !reflect.DeepEqual(migrated, current) {
		t.Errorf("current shape changed: %v", migrated)
	}
}

func TestMigratingDefaultsIsIdentity(t *testing.T) {
	registry := NewRegistry()
	for _, key := range registry.Keys() {
		spec, _ := registry.Spec(key)
		if spec.Migrate == nil {
			continue
		}
		def := spec.Default()
		if migrated := spec.Migrate(Clone(def)); !reflect.DeepEqual(migrated, def) {
			t.Errorf("%s: migrating the default document changed it", key)
		}
	}
}

func TestDefaultsPassTheirOwnChecks(t *testing.T) {
	registry := NewRegistry()
	for _, key := range registry.Keys() {
		spec, _ := registry.Spec(key)
		if err := spec.Check(spec.Default()); err != nil {
			t.Errorf("%s: default document fails its shape check: %v", key, err)
		}
	}
}
