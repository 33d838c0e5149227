package patient

import (
	"context"
	"fmt"
)

// MemRepo is the in-memory Repository backing the prototype. Records are
// validated and frozen at construction; every accessor hands out the shared
// immutable values, so no locking is needed.
type MemRepo struct {
	records []*Record
	byID    map[string]*Record
}

// NewMemRepo builds a repository from the given records, preserving their
// order. It fails on the first invalid or duplicate record: malformed seed
// data is a startup error, never a query-time condition.
func NewMemRepo(records []*Record) (*MemRepo, error) {
	r := &MemRepo{
		records: make([]*Record, 0, len(records)),
		byID:    make(map[string]*Record, len(records)),
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid patient record: %w", err)
		}
		if _, dup := r.byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate patient record id %q", rec.ID)
		}
		r.records = append(r.records, rec)
		r.byID[rec.ID] = rec
	}
	return r, nil
}

// GetAll returns all records in insertion order.
func (r *MemRepo) GetAll(_ context.Context) []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// GetByID returns the record with the given id, or ErrNotFound.
func (r *MemRepo) GetByID(_ context.Context, id string) (*Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

// Len reports the number of records in the store.
func (r *MemRepo) Len() int {
	return len(r.records)
}
