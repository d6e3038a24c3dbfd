package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"roteiro/internal/models/entities"
	"roteiro/internal/repositories"
	mem "roteiro/pkg/memcache"
	"roteiro/pkg/utils"
)

const suggestionTimeout = 30 * time.Second

// SuggestionServiceInterface produces and caches the per-lodging
// surroundings text. One request per lodging may be in flight at a time;
// the flag is always cleared, even when the provider call fails or times
// out. A failed call leaves the previously cached text untouched.
type SuggestionServiceInterface interface {
	Cached(ctx context.Context, lodgingID string) (text string, ok bool, err error)
	Generate(ctx context.Context, lodgingID string) (string, error)
}

type SuggestionService struct {
	lodgings repositories.LodgingRepository
	cache    repositories.SuggestionCacheRepository
	client   utils.SuggestionClientInterface
	inflight mem.InFlightStore
}

// NewSuggestionService accepts a nil client when no provider credential is
// configured; Generate then degrades to ErrSuggestionUnavailable instead of
// failing at startup.
func NewSuggestionService(
	lodgings repositories.LodgingRepository,
	cache repositories.SuggestionCacheRepository,
	client utils.SuggestionClientInterface,
	inflight mem.InFlightStore,
) SuggestionServiceInterface {
	return &SuggestionService{lodgings: lodgings, cache: cache, client: client, inflight: inflight}
}

func (s *SuggestionService) Cached(ctx context.Context, lodgingID string) (string, bool, error) {
	return s.cache.Get(ctx, lodgingID)
}

func (s *SuggestionService) Generate(ctx context.Context, lodgingID string) (string, error) {
	if s.client == nil {
		return "", utils.ErrSuggestionUnavailable
	}

	lodging, err := s.findLodging(ctx, lodgingID)
	if err != nil {
		return "", err
	}

	if !s.inflight.Begin(lodgingID) {
		return "", utils.ErrSuggestionInFlight
	}
	defer s.inflight.End(lodgingID)

	callCtx, cancel := context.WithTimeout(ctx, suggestionTimeout)
	defer cancel()

	text, err := s.client.SurroundingsGuide(callCtx, lodging.HotelName, lodging.Address, lodging.City)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrCollaborator, err)
	}

	if err := s.cache.Set(ctx, lodgingID, text); err != nil {
		// The text was generated; a cache write failure only costs the
		// next lookup a regeneration.
		log.Printf("suggestions: cache write for %s: %v", lodgingID, err)
	}
	return text, nil
}

func (s *SuggestionService) findLodging(ctx context.Context, id string) (entities.Lodging, error) {
	items, err := s.lodgings.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			return entities.Lodging{}, utils.ErrNotFound
		}
		return entities.Lodging{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return entities.Lodging{}, utils.ErrNotFound
}
