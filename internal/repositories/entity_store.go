// Package repositories holds the entity stores: the load/seed/persist cycle
// shared by every domain collection, plus the two auxiliary blobs (the
// per-lodging suggestion cache and the visited-places set).
package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"roteiro/internal/infra"
	"roteiro/pkg/utils"
)

// EntityStore persists one collection as a single blob under a fixed key.
// Load falls back to the seed when the key was never written, and to an
// empty collection plus ErrStorageCorrupt when the blob fails to parse.
// The corrupt value is left in storage; only the next Persist overwrites
// it. Every mutation rewrites the whole collection, which is fine at this
// scale (dozens of entries, single writer).
type EntityStore[T any] struct {
	store infra.BlobStore
	key   string
	seed  []T
}

func NewEntityStore[T any](store infra.BlobStore, key string, seed []T) *EntityStore[T] {
	return &EntityStore[T]{store: store, key: key, seed: seed}
}

func (s *EntityStore[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", utils.ErrStorageUnavailable, s.key, err)
	}
	if !ok {
		out := make([]T, len(s.seed))
		copy(out, s.seed)
		return out, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, fmt.Errorf("%w: key %s: %v", utils.ErrStorageCorrupt, s.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *EntityStore[T]) Persist(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", s.key, err)
	}
	if err := s.store.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", utils.ErrStorageUnavailable, s.key, err)
	}
	return nil
}
