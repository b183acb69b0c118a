package domain

import (
	"encoding/json"
	"fmt"
)

// Record is the wire shape of a persisted project: the raw document map with
// the store's native timestamps already translated to RFC 3339 strings and
// the document id injected. Nothing outside the store layer should read a
// Record's fields directly; convert with Project() first.
type Record map[string]any

// IsValidRecord is a shallow guard against corrupt or foreign documents, not
// a schema validator: string id, string createdAt, object-typed hero and
// brand. Bulk loads use it to drop malformed entries without failing the
// whole list.
func IsValidRecord(r Record) bool {
	if r == nil {
		return false
	}
	if s, ok := r["id"].(string); !ok || s == "" {
		return false
	}
	if _, ok := r["createdAt"].(string); !ok {
		return false
	}
	if m, ok := r["hero"].(map[string]any); !ok || m == nil {
		return false
	}
	if m, ok := r["brand"].(map[string]any); !ok || m == nil {
		return false
	}
	return true
}

// Project decodes the record into the current entity shape.
func (r Record) Project() (Project, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return Project{}, fmt.Errorf("encode record: %w", err)
	}
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, fmt.Errorf("decode record: %w", err)
	}
	return p, nil
}

// RecordOf converts a project back to its wire shape.
func RecordOf(p Project) (Record, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return r, nil
}

// ProjectUpdate is a partial update: top-level project fields to replace.
type ProjectUpdate map[string]any

// Sanitized returns a copy with the immutable system fields removed.
// updatedAt is dropped too; the write path stamps its own.
func (u ProjectUpdate) Sanitized() ProjectUpdate {
	out := make(ProjectUpdate, len(u))
	for k, v := range u {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		out[k] = v
	}
	return out
}
