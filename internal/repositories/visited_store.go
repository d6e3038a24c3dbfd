package repositories

import (
	"context"
	"errors"

	"roteiro/internal/infra"
	"roteiro/pkg/utils"
)

const visitedStorageKey = "viagemVisitados"

func isCorrupt(err error) bool {
	return errors.Is(err, utils.ErrStorageCorrupt)
}

// VisitedRepository persists the set of guide destinations the group has
// marked as visited, stored as a plain list of destination IDs.
type VisitedRepository interface {
	Load(ctx context.Context) ([]string, error)
	Persist(ctx context.Context, ids []string) error
}

func NewVisitedRepository(store infra.BlobStore) VisitedRepository {
	return NewEntityStore[string](store, visitedStorageKey, nil)
}
