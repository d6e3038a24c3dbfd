package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"roteiro/internal/infra"
	"roteiro/pkg/utils"
)

const suggestionCacheKey = "viagem_hospedagens_ai_cache"

// SuggestionCacheRepository stores the last generated surroundings text per
// lodging ID. The cache is advisory: it is not updated transactionally with
// the lodging collection.
type SuggestionCacheRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, lodgingID string) (string, bool, error)
	Set(ctx context.Context, lodgingID, text string) error
	Evict(ctx context.Context, lodgingID string) error
}

type suggestionCache struct {
	store infra.BlobStore
}

func NewSuggestionCacheRepository(store infra.BlobStore) SuggestionCacheRepository {
	return &suggestionCache{store: store}
}

func (c *suggestionCache) All(ctx context.Context) (map[string]string, error) {
	raw, ok, err := c.store.Get(ctx, suggestionCacheKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", utils.ErrStorageUnavailable, suggestionCacheKey, err)
	}
	if !ok {
		return map[string]string{}, nil
	}
	var cache map[string]string
	if err := json.Unmarshal(raw, &cache); err != nil {
		return map[string]string{}, fmt.Errorf("%w: key %s: %v", utils.ErrStorageCorrupt, suggestionCacheKey, err)
	}
	if cache == nil {
		cache = map[string]string{}
	}
	return cache, nil
}

func (c *suggestionCache) Get(ctx context.Context, lodgingID string) (string, bool, error) {
	cache, err := c.All(ctx)
	if err != nil {
		return "", false, err
	}
	text, ok := cache[lodgingID]
	return text, ok, nil
}

func (c *suggestionCache) Set(ctx context.Context, lodgingID, text string) error {
	cache, err := c.All(ctx)
	if err != nil && !isCorrupt(err) {
		return err
	}
	cache[lodgingID] = text
	return c.persist(ctx, cache)
}

func (c *suggestionCache) Evict(ctx context.Context, lodgingID string) error {
	cache, err := c.All(ctx)
	if err != nil && !isCorrupt(err) {
		return err
	}
	if _, ok := cache[lodgingID]; !ok {
		return nil
	}
	delete(cache, lodgingID)
	return c.persist(ctx, cache)
}

func (c *suggestionCache) persist(ctx context.Context, cache map[string]string) error {
	raw, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", suggestionCacheKey, err)
	}
	if err := c.store.Put(ctx, suggestionCacheKey, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", utils.ErrStorageUnavailable, suggestionCacheKey, err)
	}
	return nil
}
