package repositories

import (
	"context"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
)

const memberStorageKey = "viagem_membros_data"

type MemberRepository interface {
	Load(ctx context.Context) ([]entities.TripMember, error)
	Persist(ctx context.Context, items []entities.TripMember) error
}

func NewMemberRepository(store infra.BlobStore) MemberRepository {
	return NewEntityStore[entities.TripMember](store, memberStorageKey, nil)
}
