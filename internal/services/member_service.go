package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

// MemberServiceInterface manages the travel group roster. Like the memory
// log, any authenticated user may add, edit or remove members.
type MemberServiceInterface interface {
	List(ctx context.Context) ([]entities.TripMember, error)
	Create(ctx context.Context, req request_models.MemberRequest) (entities.TripMember, error)
	Update(ctx context.Context, id string, req request_models.MemberRequest) (entities.TripMember, error)
	Remove(ctx context.Context, id string) error
}

type MemberService struct {
	repo repositories.MemberRepository
}

func NewMemberService(repo repositories.MemberRepository) MemberServiceInterface {
	return &MemberService{repo: repo}
}

func (s *MemberService) load(ctx context.Context) ([]entities.TripMember, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("members: %v, continuing with empty collection", err)
			return items, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *MemberService) List(ctx context.Context) ([]entities.TripMember, error) {
	return s.load(ctx)
}

func (s *MemberService) Create(ctx context.Context, req request_models.MemberRequest) (entities.TripMember, error) {
	if strings.TrimSpace(req.Name) == "" {
		return entities.TripMember{}, fmt.Errorf("%w: name is required", utils.ErrValidation)
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.TripMember{}, err
	}

	member := entities.TripMember{ID: utils.NewID(), Name: req.Name, Photo: req.Photo}
	items = append(items, member)

	if err := s.repo.Persist(ctx, items); err != nil {
		return entities.TripMember{}, err
	}
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, req request_models.MemberRequest) (entities.TripMember, error) {
	if strings.TrimSpace(req.Name) == "" {
		return entities.TripMember{}, fmt.Errorf("%w: name is required", utils.ErrValidation)
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.TripMember{}, err
	}

	for i, item := range items {
		if item.ID != id {
			continue
		}
		items[i] = entities.TripMember{ID: item.ID, Name: req.Name, Photo: req.Photo}
		if err := s.repo.Persist(ctx, items); err != nil {
			return entities.TripMember{}, err
		}
		return items[i], nil
	}
	return entities.TripMember{}, utils.ErrNotFound
}

func (s *MemberService) Remove(ctx context.Context, id string) error {
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
