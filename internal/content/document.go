// Package content implements the section-content model of the portfolio:
// typed section documents stored as opaque JSON under a unique section key,
// with default fallbacks, legacy-shape migration, and ordered-list editing.
package content

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is one decoded section document. The stored column has no
// enforced schema; shape is checked per section key at read time.
type Document map[string]any

// Clone returns a deep copy. List operations never mutate their input.
func Clone(doc Document) Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Document{}
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return Document{}
	}
	return out
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func stringOr(doc Document, field string, def Document) string {
	if v, ok := doc[field].(string); ok {
		return v
	}
	v, _ := def[field].(string)
	return v
}

func listOr(doc Document, field string, def Document) []any {
	if v, ok := doc[field].([]any); ok {
		return v
	}
	v, _ := def[field].([]any)
	return v
}

// wrapPrimitives upgrades a legacy array to the current shape: each
// primitive element becomes {id: "<n>", <field>: value} with sequential
// identifiers starting at "1", original order preserved. Object elements
// pass through, gaining a sequential id only when they lack one.
func wrapPrimitives(list []any, field string) []any {
	out := make([]any, 0, len(list))
	for i, v := range list {
		if m, ok := v.(map[string]any); ok {
			if _, hasID := m["id"]; !hasID {
				withID := make(map[string]any, len(m)+1)
				withID["id"] = strconv.Itoa(i + 1)
				for k, val := range m {
					withID[k] = val
				}
				m = withID
			}
			out = append(out, m)
			continue
		}
		out = append(out, map[string]any{
			"id":  strconv.Itoa(i + 1),
			field: fmt.Sprintf("%v", v),
		})
	}
	return out
}

// assignSequentialIDs gives object elements sequential string identifiers
// when missing; elements that already carry an id are left alone.
func assignSequentialIDs(list []any) []any {
	out := make([]any, 0, len(list))
	for i, v := range list {
		m, ok := v.(map[string]any)
		if !ok {
			out = append(out, v)
			continue
		}
		if _, hasID := m["id"]; !hasID {
			withID := make(map[string]any, len(m)+1)
			withID["id"] = strconv.Itoa(i + 1)
			for k, val := range m {
				withID[k] = val
			}
			m = withID
		}
		out = append(out, m)
	}
	return out
}
