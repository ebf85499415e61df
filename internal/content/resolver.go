package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"portfolio/api/internal/store"
)

// SectionStore is the slice of the store the resolver needs.
type SectionStore interface {
	GetSection(ctx context.Context, sectionKey string) (store.SectionRow, error)
}

// ErrUnknownSection is returned for keys no section spec claims.
var ErrUnknownSection = errors.New("unknown section key")

// Resolved is the outcome of resolving one section key. Content is always
// populated: either the stored document verbatim or the section default.
type Resolved struct {
	Key         string
	Content     json.RawMessage
	Document    Document
	UpdatedAt   time.Time
	FromDefault bool
	// Err records a non-fatal fetch failure; the public site still renders
	// from defaults when the store is unreachable.
	Err error
}

type Resolver struct {
	store    SectionStore
	registry *Registry
}

func NewResolver(sectionStore SectionStore, registry *Registry) *Resolver {
	return &Resolver{store: sectionStore, registry: registry}
}

func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve fetches the stored document for a section key. An absent row,
// null content, a fetch failure, or stored content that matches no known
// shape for the section all resolve to the Default Document; only an
// unknown key is an error.
func (r *Resolver) Resolve(ctx context.Context, key string) (Resolved, error) {
	spec, ok := r.registry.Spec(key)
	if !ok {
		return Resolved{}, ErrUnknownSection
	}

	row, err := r.store.GetSection(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.defaultResolved(spec, nil), nil
		}
		log.Printf("resolve %s: fetch failed: %v", key, err)
		return r.defaultResolved(spec, err), nil
	}
	if len(row.Content) == 0 {
		return r.defaultResolved(spec, nil), nil
	}

	var doc Document
	if err := json.Unmarshal(row.Content, &doc); err != nil {
		log.Printf("resolve %s: stored content is not a JSON object, using defaults", key)
		return r.defaultResolved(spec, nil), nil
	}
	if err := spec.Check(doc); err != nil {
		log.Printf("resolve %s: stored content rejected (%v), using defaults", key, err)
		return r.defaultResolved(spec, nil), nil
	}

	return Resolved{
		Key:       key,
		Content:   row.Content,
		Document:  doc,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// ResolveForEdit resolves a section and upgrades legacy shapes to the
// current schema. Only the admin edit path migrates; the public read path
// serves stored content verbatim.
func (r *Resolver) ResolveForEdit(ctx context.Context, key string) (Resolved, error) {
	resolved, err := r.Resolve(ctx, key)
	if err != nil {
		return Resolved{}, err
	}
	spec, _ := r.registry.Spec(key)
	if spec.Migrate != nil {
		resolved.Document = spec.Migrate(resolved.Document)
		raw, err := json.Marshal(resolved.Document)
		if err != nil {
			return Resolved{}, err
		}
		resolved.Content = raw
	}
	return resolved, nil
}

func (r *Resolver) defaultResolved(spec Spec, fetchErr error) Resolved {
	doc := spec.Default()
	raw, _ := json.Marshal(doc)
	return Resolved{
		Key:         spec.Key,
		Content:     raw,
		Document:    doc,
		FromDefault: true,
		Err:         fetchErr,
	}
}
