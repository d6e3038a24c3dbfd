package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

const legDatetimeLayout = "2006-01-02T15:04"

type TransportServiceInterface interface {
	// List returns legs in chronological order.
	List(ctx context.Context) ([]entities.TransportLeg, error)
	// Upcoming returns the earliest leg at or after now, or nil.
	Upcoming(ctx context.Context, now time.Time) (*entities.TransportLeg, error)
	Create(ctx context.Context, actor entities.UserProfile, req request_models.TransportLegRequest) (entities.TransportLeg, error)
	Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.TransportLegRequest) (entities.TransportLeg, error)
	Remove(ctx context.Context, actor entities.UserProfile, id string) error
}

type TransportService struct {
	repo repositories.TransportRepository
}

func NewTransportService(repo repositories.TransportRepository) TransportServiceInterface {
	return &TransportService{repo: repo}
}

func (s *TransportService) load(ctx context.Context) ([]entities.TransportLeg, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("transports: %v, continuing with empty collection", err)
			return items, nil
		}
		return nil, err
	}
	return items, nil
}

func legTime(leg entities.TransportLeg) (time.Time, bool) {
	if t, err := time.Parse(legDatetimeLayout, leg.Datetime); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, leg.Datetime); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (s *TransportService) List(ctx context.Context) ([]entities.TransportLeg, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]entities.TransportLeg, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := legTime(sorted[i])
		tj, jok := legTime(sorted[j])
		if iok && jok {
			return ti.Before(tj)
		}
		// Unparseable datetimes fall back to lexical order.
		return sorted[i].Datetime < sorted[j].Datetime
	})
	return sorted, nil
}

func (s *TransportService) Upcoming(ctx context.Context, now time.Time) (*entities.TransportLeg, error) {
	legs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, leg := range legs {
		t, ok := legTime(leg)
		if ok && !t.Before(now) {
			next := leg
			return &next, nil
		}
	}
	return nil, nil
}

func validateLeg(req request_models.TransportLegRequest) error {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: origin and destination are required", utils.ErrValidation)
	}
	switch req.Mode {
	case entities.TransportModeFlight, entities.TransportModeTrain, entities.TransportModeCar:
	default:
		return fmt.Errorf("%w: unknown transport mode %q", utils.ErrValidation, req.Mode)
	}
	switch req.Status {
	case entities.TransportStatusPaid, entities.TransportStatusPending:
	default:
		return fmt.Errorf("%w: status must be %q or %q", utils.ErrValidation,
			entities.TransportStatusPaid, entities.TransportStatusPending)
	}
	return nil
}

func legFromRequest(id string, req request_models.TransportLegRequest) entities.TransportLeg {
	return entities.TransportLeg{
		ID:          id,
		Origin:      req.Origin,
		Destination: req.Destination,
		Datetime:    req.Datetime,
		Mode:        req.Mode,
		Carrier:     req.Carrier,
		TicketRef:   req.TicketRef,
		Status:      req.Status,
		Notes:       req.Notes,
	}
}

func (s *TransportService) Create(ctx context.Context, actor entities.UserProfile, req request_models.TransportLegRequest) (entities.TransportLeg, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.TransportLeg{}, utils.ErrForbidden
	}
	if err := validateLeg(req); err != nil {
		return entities.TransportLeg{}, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.TransportLeg{}, err
	}

	leg := legFromRequest(utils.PrefixedID(utils.TransportIDPrefix), req)
	items = append(items, leg)

	if err := s.repo.Persist(ctx, items); err != nil {
		return entities.TransportLeg{}, err
	}
	return leg, nil
}

func (s *TransportService) Update(ctx context.Context, actor entities.UserProfile, id string, req request_models.TransportLegRequest) (entities.TransportLeg, error) {
	if actor.Role != utils.RoleAdmin {
		return entities.TransportLeg{}, utils.ErrForbidden
	}
	if err := validateLeg(req); err != nil {
		return entities.TransportLeg{}, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return entities.TransportLeg{}, err
	}

	for i, item := range items {
		if item.ID != id {
			continue
		}
		items[i] = legFromRequest(item.ID, req)
		if err := s.repo.Persist(ctx, items); err != nil {
			return entities.TransportLeg{}, err
		}
		return items[i], nil
	}
	return entities.TransportLeg{}, utils.ErrNotFound
}

func (s *TransportService) Remove(ctx context.Context, actor entities.UserProfile, id string) error {
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
