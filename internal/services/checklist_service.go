package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/models/response_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

type ChecklistServiceInterface interface {
	List(ctx context.Context) (response_models.ChecklistResponse, error)
	Create(ctx context.Context, actor entities.UserProfile, req request_models.CreateChecklistItemRequest) (entities.ChecklistItem, error)
	Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.UpdateChecklistItemRequest) (entities.ChecklistItem, error)
	Toggle(ctx context.Context, id string) (entities.ChecklistItem, error)
	Remove(ctx context.Context, actor entities.UserProfile, id string) error
}

type ChecklistService struct {
	repo repositories.ChecklistRepository
}

func NewChecklistService(repo repositories.ChecklistRepository) ChecklistServiceInterface {
	return &ChecklistService{repo: repo}
}

// load recovers from a corrupt blob with an empty collection; the error is
// logged, never fatal, and the stored value stays untouched until the next
// persist.
func (s *ChecklistService) load(ctx context.Context) ([]entities.ChecklistItem, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("checklist: %v, continuing with empty collection", err)
			return items, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *ChecklistService) List(ctx context.Context) (response_models.ChecklistResponse, error) {
	items, err := s.load(ctx)
	if err != nil {
		return response_models.ChecklistResponse{}, err
	}

	done := 0
	for _, item := range items {
		if item.Done {
			done++
		}
	}
	return response_models.ChecklistResponse{Items: items, Done: done, Total: len(items)}, nil
}

func (s *ChecklistService) Create(ctx context.Context, actor entities.UserProfile, req request_models.CreateChecklistItemRequest) (entities.ChecklistItem, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.ChecklistItem{}, utils.ErrForbidden
	}
	if strings.TrimSpace(req.Title) == "" {
		return entities.ChecklistItem{}, fmt.Errorf("%w: title is required", utils.ErrValidation)
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.ChecklistItem{}, err
	}

	item := entities.ChecklistItem{
		ID:        utils.NewID(),
		Title:     req.Title,
		Done:      false,
		DueDate:   req.DueDate,
		CreatedBy: actor.ID,
	}
	items = append(items, item)

	if err := s.repo.Persist(ctx, items); err != nil {
		return entities.ChecklistItem{}, err
	}
	return item, nil
}

func (s *ChecklistService) Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.UpdateChecklistItemRequest) (entities.ChecklistItem, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.ChecklistItem{}, utils.ErrForbidden
	}
	if strings.TrimSpace(req.Title) == "" {
		return entities.ChecklistItem{}, fmt.Errorf("%w: title is required", utils.ErrValidation)
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.ChecklistItem{}, err
	}

	for i, item := range items {
		if item.ID != id {
			continue
		}
		// Wholesale replacement, keeping identity and authorship.
		items[i] = entities.ChecklistItem{
			ID:        item.ID,
			Title:     req.Title,
			Done:      req.Done,
			DueDate:   req.DueDate,
			CreatedBy: item.CreatedBy,
		}
		if err := s.repo.Persist(ctx, items); err != nil {
			return entities.ChecklistItem{}, err
		}
		return items[i], nil
	}
	return entities.ChecklistItem{}, utils.ErrNotFound
}

// Toggle flips the completion flag. Any authenticated user may toggle.
func (s *ChecklistService) Toggle(ctx context.Context, id string) (entities.ChecklistItem, error) {
	items, err := s.load(ctx)
	if err != nil {
		return entities.ChecklistItem{}, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Done = !items[i].Done
		if err := s.repo.Persist(ctx, items); err != nil {
			return entities.ChecklistItem{}, err
		}
		return items[i], nil
	}
	return entities.ChecklistItem{}, utils.ErrNotFound
}

// Remove deletes permanently. The caller has already obtained the user's
// confirmation; no further prompt happens here.
func (s *ChecklistService) Remove(ctx context.Context, actor entities.UserProfile, id string) error {
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
	return s.repo.Persist(ctx, kept)
}
