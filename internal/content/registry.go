package content

import (
	"fmt"
	"sort"
)

// Spec describes one editable section: its key, the default document, a
// shape check applied at read time, the fields holding editable lists, and
// an optional migration from legacy document shapes.
type Spec struct {
	Key string
	// ListFields names the array-valued fields whose elements are List
	// Items (objects carrying an id) editable through the admin API.
	ListFields []string
	// Check reports whether a decoded document is a recognizable shape for
	// this section; legacy shapes are recognizable, corrupt data is not.
	Check func(Document) error
	// Migrate upgrades a recognized document to the current schema. nil
	// means the section never changed shape.
	Migrate func(Document) Document

	defaults func() Document
}

// Default returns a fresh copy of the section's Default Document.
func (s Spec) Default() Document {
	return s.defaults()
}

// HasListField reports whether field is an editable list of this section.
func (s Spec) HasListField(field string) bool {
	for _, f := range s.ListFields {
		if f == field {
			return true
		}
	}
	return false
}

type Registry struct {
	specs map[string]Spec
}

// Spec returns the section spec for a key.
func (r *Registry) Spec(key string) (Spec, bool) {
	spec, ok := r.specs[key]
	return spec, ok
}

// Keys returns all registered section keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.specs))
	for key := range r.specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NewRegistry builds the registry of all section keys the site renders.
func NewRegistry() *Registry {
	specs := []Spec{
		{
			Key:      "hero",
			defaults: defaultHero,
			Check: checks(
				requireString("badge"),
				requireString("subtitle"),
				requireList("headline"),
				requireObject("ctaButtons"),
			),
		},
		{
			Key:        "about",
			defaults:   defaultAbout,
			ListFields: []string{"bio", "stats", "highlights"},
			Check: checks(
				requireString("name"),
				requireList("bio"),
				requireList("stats"),
				requireList("highlights"),
			),
			Migrate: migrateAbout,
		},
		{
			Key:        "skills",
			defaults:   defaultSkills,
			ListFields: []string{"categories"},
			Check:      checks(requireList("categories")),
		},
		{
			Key:        "experience",
			defaults:   defaultExperience,
			ListFields: []string{"experiences"},
			Check:      checks(requireList("experiences")),
		},
		{
			Key:        "education",
			defaults:   defaultEducation,
			ListFields: []string{"education", "certifications"},
			Check: checks(
				requireList("education"),
				requireList("certifications"),
			),
			Migrate: migrateEducation,
		},
		{
			Key:        "projects",
			defaults:   defaultProjects,
			ListFields: []string{"projects"},
			Check:      checks(requireList("projects")),
		},
		{
			Key:        "softskills",
			defaults:   defaultSoftSkills,
			ListFields: []string{"skills"},
			Check: checks(
				requireList("skills"),
				requireString("quote"),
				requireString("quoteAuthor"),
			),
		},
		{
			Key:      "contact",
			defaults: defaultContactSection,
			Check: checks(
				requireString("sectionTitle"),
				requireString("sectionDescription"),
				requireList("opportunityTags"),
			),
		},
		{
			Key:        "social-links",
			defaults:   defaultSocialLinks,
			ListFields: []string{"links"},
			Check:      checks(requireList("links")),
		},
	}

	registry := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, spec := range specs {
		registry.specs[spec.Key] = spec
	}
	return registry
}

type check func(Document) error

func checks(cs ...check) func(Document) error {
	return func(doc Document) error {
		for _, c := range cs {
			if err := c(doc); err != nil {
				return err
			}
		}
		return nil
	}
}

func requireString(field string) check {
	return func(doc Document) error {
		if _, ok := doc[field].(string); !ok {
			return fmt.Errorf("field %q: expected string", field)
		}
		return nil
	}
}

func requireList(field string) check {
	return func(doc Document) error {
		if _, ok := doc[field].([]any); !ok {
			return fmt.Errorf("field %q: expected array", field)
		}
		return nil
	}
}

func requireObject(field string) check {
	return func(doc Document) error {
		if _, ok := doc[field].(map[string]any); !ok {
			return fmt.Errorf("field %q: expected object", field)
		}
		return nil
	}
}
