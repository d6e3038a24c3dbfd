package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

func newTransportService() services.TransportServiceInterface {
	store := infra.NewMemoryBlobStore()
	return services.NewTransportService(repositories.NewTransportRepository(store))
}

func validLegRequest() request_models.TransportLegRequest {
	return request_models.TransportLegRequest{
		Origin:      "Brussels",
		Destination: "Brazil",
		Datetime:    "2025-06-23T09:00",
		Mode:        entities.TransportModeFlight,
		Carrier:     "LATAM",
		Status:      entities.TransportStatusPending,
	}
}

func TestTransportListChronological(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	// Insert a leg that predates the seeded ones.
	req := validLegRequest()
	req.Origin = "Home"
	req.Destination = "Airport"
	req.Datetime = "2025-06-15T05:00"
	req.Mode = entities.TransportModeCar
	_, err := svc.Create(ctx, adminActor, req)
	require.NoError(t, err)

	legs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, legs, 4)
	assert.Equal(t, "Home", legs[0].Origin)
	assert.Equal(t, "Brazil", legs[1].Origin)
	assert.Equal(t, "Paris", legs[2].Origin)
	assert.Equal(t, "London", legs[3].Origin)
}

func TestTransportUpcoming(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	now := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	leg, err := svc.Upcoming(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, leg)
	assert.Equal(t, "Paris", leg.Origin)
	assert.Equal(t, "London", leg.Destination)
}

func TestTransportUpcomingNoneLeft(t *testing.T) {
	svc := newTransportService()

	leg, err := svc.Upcoming(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, leg)
}

func TestTransportCreateGeneratesPrefixedID(t *testing.T) {
	svc := newTransportService()

	leg, err := svc.Create(context.Background(), adminActor, validLegRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(leg.ID, "TRA-"))
}

func TestTransportValidation(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	req := validLegRequest()
	req.Origin = ""
	_, err := svc.Create(ctx, adminActor, req)
	assert.ErrorIs(t, err, utils.ErrValidation)

	req = validLegRequest()
	req.Mode = "boat"
	_, err = svc.Create(ctx, adminActor, req)
	assert.ErrorIs(t, err, utils.ErrValidation)

	req = validLegRequest()
	req.Status = "unpaid"
	_, err = svc.Create(ctx, adminActor, req)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestTransportMutationsRequireAdmin(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	_, err := svc.Create(ctx, memberActor, validLegRequest())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.Update(ctx, memberActor, "1", validLegRequest())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = svc.Remove(ctx, memberActor, "1")
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestTransportUpdate(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	req := validLegRequest()
	req.Status = entities.TransportStatusPaid
	req.TicketRef = "LA4321"
	updated, err := svc.Update(ctx, adminActor, "3", req)
	require.NoError(t, err)
	assert.Equal(t, "3", updated.ID)
	assert.Equal(t, entities.TransportStatusPaid, updated.Status)
	assert.Equal(t, "LA4321", updated.TicketRef)
}

func TestTransportRemove(t *testing.T) {
	svc := newTransportService()
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, adminActor, "2"))

	legs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, legs, 2)

	err = svc.Remove(ctx, adminActor, "2")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
