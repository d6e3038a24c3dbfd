package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
	mem "roteiro/pkg/memcache"
	"roteiro/pkg/utils"
)

type mockSuggestionClient struct {
	guideFunc func(ctx context.Context, hotelName, address, city string) (string, error)
}

var _ utils.SuggestionClientInterface = (*mockSuggestionClient)(nil)

func (m *mockSuggestionClient) SurroundingsGuide(ctx context.Context, hotelName, address, city string) (string, error) {
	return m.guideFunc(ctx, hotelName, address, city)
}

type suggestionFixture struct {
	svc      services.SuggestionServiceInterface
	cache    repositories.SuggestionCacheRepository
	inflight mem.InFlightStore
}

func newSuggestionFixture(client utils.SuggestionClientInterface) suggestionFixture {
	store := infra.NewMemoryBlobStore()
	cache := repositories.NewSuggestionCacheRepository(store)
	inflight := mem.NewInFlight()
	svc := services.NewSuggestionService(repositories.NewLodgingRepository(store), cache, client, inflight)
	return suggestionFixture{svc: svc, cache: cache, inflight: inflight}
}

func TestSuggestionGenerateNilClient(t *testing.T) {
	f := newSuggestionFixture(nil)

	_, err := f.svc.Generate(context.Background(), "1")
	assert.ErrorIs(t, err, utils.ErrSuggestionUnavailable)
}

func TestSuggestionGenerateUnknownLodging(t *testing.T) {
	client := &mockSuggestionClient{guideFunc: func(context.Context, string, string, string) (string, error) {
		return "never called", nil
	}}
	f := newSuggestionFixture(client)

	_, err := f.svc.Generate(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSuggestionGenerateCachesResult(t *testing.T) {
	var gotHotel, gotCity string
	client := &mockSuggestionClient{guideFunc: func(_ context.Context, hotelName, _, city string) (string, error) {
		gotHotel = hotelName
		gotCity = city
		return "Walk to the Champ de Mars at dusk.", nil
	}}
	f := newSuggestionFixture(client)
	ctx := context.Background()

	text, err := f.svc.Generate(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Walk to the Champ de Mars at dusk.", text)
	assert.Equal(t, "Hôtel Pullman Paris Tour Eiffel", gotHotel)
	assert.Equal(t, "Paris", gotCity)

	cached, ok, err := f.svc.Cached(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, text, cached)

	assert.False(t, f.inflight.Active("1"))
}

func TestSuggestionGenerateRejectsConcurrentRequest(t *testing.T) {
	client := &mockSuggestionClient{guideFunc: func(context.Context, string, string, string) (string, error) {
		return "text", nil
	}}
	f := newSuggestionFixture(client)

	require.True(t, f.inflight.Begin("1"))
	defer f.inflight.End("1")

	_, err := f.svc.Generate(context.Background(), "1")
	assert.ErrorIs(t, err, utils.ErrSuggestionInFlight)
}

func TestSuggestionGenerateFailureLeavesCacheAndClearsFlag(t *testing.T) {
	client := &mockSuggestionClient{guideFunc: func(context.Context, string, string, string) (string, error) {
		return "", errors.New("provider down")
	}}
	f := newSuggestionFixture(client)
	ctx := context.Background()

	require.NoError(t, f.cache.Set(ctx, "1", "previous text"))

	_, err := f.svc.Generate(ctx, "1")
	assert.ErrorIs(t, err, utils.ErrCollaborator)

	cached, ok, err := f.svc.Cached(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "previous text", cached)

	// The flag cleared; a retry is allowed immediately.
	assert.False(t, f.inflight.Active("1"))
}

func TestSuggestionGeneratePassesDeadline(t *testing.T) {
	client := &mockSuggestionClient{guideFunc: func(ctx context.Context, _, _, _ string) (string, error) {
		_, hasDeadline := ctx.Deadline()
		if !hasDeadline {
			return "", errors.New("no deadline set")
		}
		return "ok", nil
	}}
	f := newSuggestionFixture(client)

	text, err := f.svc.Generate(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
