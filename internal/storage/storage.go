// Package storage provides the persistence adapters the task store saves
// through. Every adapter stores the whole collection as one self-describing
// value under a single fixed key and replaces it entirely on save.
package storage

import (
	"context"

	"github.com/mkarpenko/tasklist/internal/model"
)

// Adapter is the persistence collaborator contract. Load returns (nil, nil)
// on first run; foreign or corrupted data is degraded to whatever records
// survive defensive decoding, never an error. Errors are reserved for I/O
// failures of the backing store.
type Adapter interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}
