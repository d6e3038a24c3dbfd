package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/infra"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

func newMemoryService() services.MemoryServiceInterface {
	store := infra.NewMemoryBlobStore()
	return services.NewMemoryService(repositories.NewMemoryRepository(store))
}

func TestMemoryLogStartsEmpty(t *testing.T) {
	svc := newMemoryService()

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryCreateOpenToMembers(t *testing.T) {
	svc := newMemoryService()

	entry, err := svc.Create(context.Background(), memberActor, request_models.CreateMemoryRequest{
		Place: "Eiffel Tower",
		Notes: "First evening in Paris.",
	})
	require.NoError(t, err)
	assert.Equal(t, "member-1", entry.CreatedBy)

	_, err = time.Parse(time.RFC3339, entry.Timestamp)
	assert.NoError(t, err)
}

func TestMemoryCreateRequiresPhotoOrNotes(t *testing.T) {
	svc := newMemoryService()

	_, err := svc.Create(context.Background(), memberActor, request_models.CreateMemoryRequest{Place: "Somewhere"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestMemoryCreateDefaultsPlace(t *testing.T) {
	svc := newMemoryService()

	entry, err := svc.Create(context.Background(), memberActor, request_models.CreateMemoryRequest{Photo: "data:image/jpeg;base64,abc"})
	require.NoError(t, err)
	assert.Equal(t, "Trip moment", entry.Place)
}

func TestMemoryListNewestFirst(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	first, err := svc.Create(ctx, memberActor, request_models.CreateMemoryRequest{Notes: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, memberActor, request_models.CreateMemoryRequest{Notes: "second"})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestMemoryRemove(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	entry, err := svc.Create(ctx, memberActor, request_models.CreateMemoryRequest{Notes: "to delete"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, entry.ID))

	err = svc.Remove(ctx, entry.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
