package content

import "github.com/google/uuid"

// Editable List Model: ordered-list operations over a document's
// array-valued fields. Items are objects carrying a unique "id". Every
// operation is pure and returns a new document; nothing touches storage.
// Array order is the on-page display order.

// NewItemID returns the identifier assigned to newly created list items.
// Random ids rule out the same-millisecond collisions that timestamp ids
// were subject to.
func NewItemID() string {
	return uuid.NewString()
}

// AddItem appends item to the named list and assigns it a fresh id; the
// caller supplies all other fields. The assigned id is returned.
func AddItem(doc Document, field string, item map[string]any) (Document, string) {
	out := Clone(doc)
	id := NewItemID()
	withID := make(map[string]any, len(item)+1)
	for k, v := range item {
		withID[k] = v
	}
	withID["id"] = id
	list, _ := out[field].([]any)
	out[field] = append(list, any(withID))
	return out, id
}

// UpdateItem shallow-merges patch into the item whose id matches. The id
// itself is not patchable. No-op when the id is absent.
func UpdateItem(doc Document, field, id string, patch map[string]any) Document {
	out := Clone(doc)
	list, ok := out[field].([]any)
	if !ok {
		return out
	}
	for i, v := range list {
		m, ok := v.(map[string]any)
		if !ok || m["id"] != id {
			continue
		}
		merged := make(map[string]any, len(m)+len(patch))
		for k, val := range m {
			merged[k] = val
		}
		for k, val := range patch {
			if k == "id" {
				continue
			}
			merged[k] = val
		}
		list[i] = merged
	}
	return out
}

// RemoveItem filters out the item whose id matches. No-op when absent.
// Removed ids are never reassigned; NewItemID never repeats.
func RemoveItem(doc Document, field, id string) Document {
	out := Clone(doc)
	list, ok := out[field].([]any)
	if !ok {
		return out
	}
	filtered := make([]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok && m["id"] == id {
			continue
		}
		filtered = append(filtered, v)
	}
	out[field] = filtered
	return out
}

// Reorder replaces the named list with the caller-supplied array. The
// caller is trusted to pass a permutation of the current items; this is
// the drag-and-drop contract.
func Reorder(doc Document, field string, items []any) Document {
	out := Clone(doc)
	// round-trip through Clone semantics so the caller's slice is not shared
	wrapped := Clone(Document{field: items})
	out[field] = wrapped[field]
	return out
}
