package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/infra"
	"roteiro/internal/models/request_models"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

func newMemberService() services.MemberServiceInterface {
	store := infra.NewMemoryBlobStore()
	return services.NewMemberService(repositories.NewMemberRepository(store))
}

func TestMembersStartEmpty(t *testing.T) {
	svc := newMemberService()

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMemberCreateRequiresName(t *testing.T) {
	svc := newMemberService()

	_, err := svc.Create(context.Background(), request_models.MemberRequest{Name: "  "})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestMemberLifecycle(t *testing.T) {
	svc := newMemberService()
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.MemberRequest{Name: "Fabiana", Photo: "https://example.com/f.jpg"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.Update(ctx, created.ID, request_models.MemberRequest{Name: "Fabi"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Fabi", updated.Name)
	assert.Empty(t, updated.Photo)

	require.NoError(t, svc.Remove(ctx, created.ID))

	members, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMemberUpdateUnknownID(t *testing.T) {
	svc := newMemberService()

	_, err := svc.Update(context.Background(), "nope", request_models.MemberRequest{Name: "x"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = svc.Remove(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
