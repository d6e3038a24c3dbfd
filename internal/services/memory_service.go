package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

// MemoryServiceInterface manages the trip's photo/memory log. Creation and
// deletion are open to every authenticated user; memory-keeping is
// communal, unlike the admin-curated logistics collections.
type MemoryServiceInterface interface {
	List(ctx context.Context) ([]entities.MemoryEntry, error)
	Create(ctx context.Context, actor entities.UserProfile, req request_models.CreateMemoryRequest) (entities.MemoryEntry, error)
	Remove(ctx context.Context, id string) error
}

type MemoryService struct {
	repo repositories.MemoryRepository
	now  func() time.Time
}

func NewMemoryService(repo repositories.MemoryRepository) MemoryServiceInterface {
	return &MemoryService{repo: repo, now: time.Now}
}

func (s *MemoryService) load(ctx context.Context) ([]entities.MemoryEntry, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("memories: %v, continuing with empty collection", err)
			return items, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *MemoryService) List(ctx context.Context) ([]entities.MemoryEntry, error) {
	return s.load(ctx)
}

func (s *MemoryService) Create(ctx context.Context, actor entities.UserProfile, req request_models.CreateMemoryRequest) (entities.MemoryEntry, error) {
	if strings.TrimSpace(req.Photo) == "" && strings.TrimSpace(req.Notes) == "" {
		return entities.MemoryEntry{}, fmt.Errorf("%w: a photo or a note is required", utils.ErrValidation)
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.MemoryEntry{}, err
	}

	place := req.Place
	if strings.TrimSpace(place) == "" {
		place = "Trip moment"
	}

	entry := entities.MemoryEntry{
		ID:        utils.NewID(),
		Place:     place,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Photo:     req.Photo,
		Notes:     req.Notes,
		CreatedBy: actor.ID,
	}

	// Newest first.
	items = append([]entities.MemoryEntry{entry}, items...)

	if err := s.repo.Persist(ctx, items); err != nil {
		return entities.MemoryEntry{}, err
	}
	return entry, nil
}

func (s *MemoryService) Remove(ctx context.Context, id string) error {
	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return utils.ErrNotFound
	}
	return s.repo.Persist(ctx, kept)
}
