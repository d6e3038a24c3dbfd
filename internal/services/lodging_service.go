package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

type LodgingServiceInterface interface {
	// List returns lodgings in chronological check-in order.
	List(ctx context.Context) ([]entities.Lodging, error)
	Get(ctx context.Context, id string) (entities.Lodging, error)
	Create(ctx context.Context, actor entities.UserProfile, req request_models.LodgingRequest) (entities.Lodging, error)
	Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.LodgingRequest) (entities.Lodging, error)
	Remove(ctx context.Context, actor entities.UserProfile, id string) error
}

type LodgingService struct {
	repo  repositories.LodgingRepository
	cache repositories.SuggestionCacheRepository
}

func NewLodgingService(repo repositories.LodgingRepository, cache repositories.SuggestionCacheRepository) LodgingServiceInterface {
	return &LodgingService{repo: repo, cache: cache}
}

func (s *LodgingService) load(ctx context.Context) ([]entities.Lodging, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("lodgings: %v, continuing with empty collection", err)
			return items, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *LodgingService) List(ctx context.Context) ([]entities.Lodging, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	// ISO calendar dates sort correctly as strings.
	sorted := make([]entities.Lodging, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckIn < sorted[j].CheckIn
	})
	return sorted, nil
}

func (s *LodgingService) Get(ctx context.Context, id string) (entities.Lodging, error) {
	items, err := s.load(ctx)
	if err != nil {
		return entities.Lodging{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return entities.Lodging{}, utils.ErrNotFound
}

func validateLodging(req request_models.LodgingRequest) error {
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", utils.ErrValidation)
	}
	if strings.TrimSpace(req.HotelName) == "" {
		return fmt.Errorf("%w: hotel name is required", utils.ErrValidation)
	}
	switch req.Status {
	case entities.LodgingStatusConfirmed, entities.LodgingStatusOpen:
	default:
		return fmt.Errorf("%w: status must be %q or %q", utils.ErrValidation,
			entities.LodgingStatusConfirmed, entities.LodgingStatusOpen)
	}
	return nil
}

func lodgingFromRequest(id string, req request_models.LodgingRequest) entities.Lodging {
	return entities.Lodging{
		ID:                 id,
		City:               req.City,
		HotelName:          req.HotelName,
		Address:            req.Address,
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		FreeCancelDeadline: req.FreeCancelDeadline,
		Site:               req.Site,
		Phone:              req.Phone,
		Status:             req.Status,
	}
}

func (s *LodgingService) Create(ctx context.Context, actor entities.UserProfile, req request_models.LodgingRequest) (entities.Lodging, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.Lodging{}, utils.ErrForbidden
	}
	if err := validateLodging(req); err != nil {
		return entities.Lodging{}, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.Lodging{}, err
	}

	lodging := lodgingFromRequest(utils.PrefixedID(utils.LodgingIDPrefix), req)
	items = append(items, lodging)

	if err := s.repo.Persist(ctx, items); err != nil {
		return entities.Lodging{}, err
	}
	return lodging, nil
}

func (s *LodgingService) Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.LodgingRequest) (entities.Lodging, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.Lodging{}, utils.ErrForbidden
	}
	if err := validateLodging(req); err != nil {
		return entities.Lodging{}, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.Lodging{}, err
	}

	for i, item := range items {
		if item.ID != id {
			continue
		}
		items[i] = lodgingFromRequest(item.ID, req)
		if err := s.repo.Persist(ctx, items); err != nil {
			return entities.Lodging{}, err
		}
		return items[i], nil
	}
	return entities.Lodging{}, utils.ErrNotFound
}

// Remove deletes the lodging and evicts any cached surroundings suggestion
// for the same ID. The two writes are independent; a failed eviction is
// logged but does not undo the deletion, the cache being advisory.
func (s *LodgingService) Remove(ctx context.Context, actor entities.UserProfile, id string) error {
	if actor.Role != utils.RoleAdmin {
		return utils.ErrForbidden
	}

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
	if err := s.repo.Persist(ctx, kept); err != nil {
		return err
	}

	if err := s.cache.Evict(ctx, id); err != nil {
		log.Printf("lodgings: evict suggestion cache for %s: %v", id, err)
	}
	return nil
}
