package services

import (
	"context"
	"time"

	"roteiro/internal/models/response_models"
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context) (response_models.TripSummary, error)
}

// DashboardService aggregates read-only derived views across collections.
// It never mutates anything.
type DashboardService struct {
	checklist ChecklistServiceInterface
	lodgings  LodgingServiceInterface
	transport TransportServiceInterface
	members   MemberServiceInterface
	memories  MemoryServiceInterface
	now       func() time.Time
}

func NewDashboardService(
	checklist ChecklistServiceInterface,
	lodgings LodgingServiceInterface,
	transport TransportServiceInterface,
	members MemberServiceInterface,
	memories MemoryServiceInterface,
) DashboardServiceInterface {
	return &DashboardService{
		checklist: checklist,
		lodgings:  lodgings,
		transport: transport,
		members:   members,
		memories:  memories,
		now:       time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (response_models.TripSummary, error) {
	var summary response_models.TripSummary

	checklist, err := s.checklist.List(ctx)
	if err != nil {
		return summary, err
	}
	summary.ChecklistDone = checklist.Done
	summary.ChecklistTotal = checklist.Total

	lodgings, err := s.lodgings.List(ctx)
	if err != nil {
		return summary, err
	}
	summary.LodgingCount = len(lodgings)

	members, err := s.members.List(ctx)
	if err != nil {
		return summary, err
	}
	summary.MemberCount = len(members)

	memories, err := s.memories.List(ctx)
	if err != nil {
		return summary, err
	}
	summary.MemoryCount = len(memories)

	next, err := s.transport.Upcoming(ctx, s.now())
	if err != nil {
		return summary, err
	}
	summary.NextLeg = next

	return summary, nil
}
