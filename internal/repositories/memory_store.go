package repositories

import (
	"context"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
)

const memoryStorageKey = "viagem_historico_data"

// The memory log starts empty; there is no seed dataset for it.

type MemoryRepository interface {
	Load(ctx context.Context) ([]entities.MemoryEntry, error)
	Persist(ctx context.Context, items []entities.MemoryEntry) error
}

func NewMemoryRepository(store infra.BlobStore) MemoryRepository {
	return NewEntityStore[entities.MemoryEntry](store, memoryStorageKey, nil)
}
