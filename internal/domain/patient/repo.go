package patient

import (
	"context"
	"errors"
)

// ErrNotFound signals that no record exists for a requested id.
var ErrNotFound = errors.New("patient record not found")

// Repository provides read access to the fixed record set. The store has no
// mutation operations: it is populated once and frozen.
type Repository interface {
	// GetAll returns every record in a stable insertion order.
	GetAll(ctx context.Context) []*Record
	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Record, error)
}
