package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"portfolio/api/internal/store"
)

type fakeSectionStore struct {
	rows map[string]store.SectionRow
	err  error
}

func (f *fakeSectionStore) GetSection(_ context.Context, key string) (store.SectionRow, error) {
	if f.err != nil {
		return store.SectionRow{}, f.err
	}
	row, ok := f.rows[key]
	if !ok {
		return store.SectionRow{}, sql.ErrNoRows
	}
	return row, nil
}

func newTestResolver(fs *fakeSectionStore) *Resolver {
	return NewResolver(fs, NewRegistry())
}

func TestResolveAbsentRowReturnsDefault(t *testing.T) {
	resolver := newTestResolver(&fakeSectionStore{})

	for _, key := range NewRegistry().Keys() {
		resolved, err := resolver.Resolve(context.Background(), key)
		if err != nil {
			t.Fatalf("resolve %s: %v", key, err)
		}
		if !resolved.FromDefault {
			t.Errorf("%s: expected FromDefault=true", key)
		}
		spec, _ := NewRegistry().Spec(key)
		if !reflect.DeepEqual(resolved.Document, spec.Default()) {
			t.Errorf("%s: resolved document is not the default document", key)
		}
	}
}

func TestResolveStoredContentVerbatim(t *testing.T) {
	stored := json.RawMessage(`{"badge":"b","subtitle":"s","headline":["x"],"ctaButtons":{"primary":"p","secondary":"q"}}`)
	resolver := newTestResolver(&fakeSectionStore{rows: map[string]store.SectionRow{
		"hero": {ID: "sec_1", SectionKey: "hero", Content: stored, UpdatedAt: time.Now()},
	}})

	resolved, err := resolver.Resolve(context.Background(), "hero")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.FromDefault {
		t.Error("expected stored content, got default")
	}
	if string(resolved.Content) != string(stored) {
		t.Errorf("content not verbatim: got %s", resolved.Content)
	}
}

func TestResolveFetchFailureFallsBackToDefault(t *testing.T) {
	fetchErr := errors.New("connection refused")
	resolver := newTestResolver(&fakeSectionStore{err: fetchErr})

	resolved, err := resolver.Resolve(context.Background(), "about")
	if err != nil {
		t.Fatalf("fetch failure must be non-fatal, got %v", err)
	}
	if !resolved.FromDefault {
		t.Error("expected default fallback on fetch failure")
	}
	if !errors.Is(resolved.Err, fetchErr) {
		t.Errorf("expected recorded fetch error, got %v", resolved.Err)
	}
}

func TestResolveNullContentReturnsDefault(t *testing.T) {
	resolver := newTestResolver(&fakeSectionStore{rows: map[string]store.SectionRow{
		"projects": {ID: "sec_1", SectionKey: "projects", Content: nil, UpdatedAt: time.Now()},
	}})

	resolved, err := resolver.Resolve(context.Background(), "projects")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !resolved.FromDefault {
		t.Error("expected default for null content")
	}
}

func TestResolveCorruptContentReturnsDefault(t *testing.T) {
	cases := map[string]string{
		"not an object":     `[1,2,3]`,
		"wrong field kinds": `{"badge":42,"subtitle":[],"headline":"x","ctaButtons":null}`,
	}
	for name, raw := range cases {
		resolver := newTestResolver(&fakeSectionStore{rows: map[string]store.SectionRow{
			"hero": {ID: "sec_1", SectionKey: "hero", Content: json.RawMessage(raw)},
		}})
		resolved, err := resolver.Resolve(context.Background(), "hero")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !resolved.FromDefault {
			t.Errorf("%s: corrupt content must resolve to default", name)
		}
	}
}

func TestResolveUnknownKey(t *testing.T) {
	resolver := newTestResolver(&fakeSectionStore{})
	if _, err := resolver.Resolve(context.Background(), "nope"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
}

func TestResolveForEditMigratesLegacyShape(t *testing.T) {
	legacy := json.RawMessage(`{
		"name": "Ana",
		"fullName": "Silva",
		"bio": ["primeiro", "segundo"],
		"stats": [{"value": "1+", "label": "Ano"}],
		"highlights": [{"title": "T", "description": "D"}]
	}`)
	resolver := newTestResolver(&fakeSectionStore{rows: map[string]store.SectionRow{
		"about": {ID: "sec_1", SectionKey: "about", Content: legacy},
	}})

	resolved, err := resolver.ResolveForEdit(context.Background(), "about")
	if err != nil {
		t.Fatalf("resolve for edit: %v", err)
	}

	bio, ok := resolved.Document["bio"].([]any)
	if !ok || len(bio) != 2 {
		t.Fatalf("expected 2 bio items, got %v", resolved.Document["bio"])
	}
	first, _ := bio[0].(map[string]any)
	if first["id"] != "1" || first["text"] != "primeiro" {
		t.Errorf("unexpected migrated bio item: %v", first)
	}
}

func TestResolveForEditDoesNotChangeCurrentShape(t *testing.T) {
	current := json.RawMessage(`{
		"name": "Ana",
		"fullName": "Silva",
		"bio": [{"id": "1", "text": "oi"}],
		"stats": [{"id": "1", "value": "1+", "label": "Ano"}],
		"highlights": [{"id": "1", "title": "T", "description": "D"}]
	}`)
	resolver := newTestResolver(&fakeSectionStore{rows: map[string]store.SectionRow{
		"about": {ID: "sec_1", SectionKey: "about", Content: current},
	}})

	resolved, err := resolver.ResolveForEdit(context.Background(), "about")
	if err != nil {
		t.Fatalf("resolve for edit: %v", err)
	}

	var want Document
	if err := json.Unmarshal(current, &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resolved.Document, want) {
		t.Errorf("current-shape document changed: %v", resolved.Document)
	}
}
