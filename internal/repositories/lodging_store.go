package repositories

import (
	"context"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
)

const lodgingStorageKey = "viagem_hospedagens_data"

var lodgingSeed = []entities.Lodging{
	{
		ID:                 "1",
		City:               "Paris",
		HotelName:          "Hôtel Pullman Paris Tour Eiffel",
		Address:            "18 Avenue De Suffren, 75015 Paris",
		CheckIn:            "2025-06-15",
		CheckOut:           "2025-06-19",
		FreeCancelDeadline: "2025-06-10",
		Site:               "https://all.accor.com",
		Phone:              "+33 1 44 38 56 00",
		Status:             entities.LodgingStatusConfirmed,
	},
	{
		ID:                 "2",
		City:               "London",
		HotelName:          "The Tower Hotel",
		Address:            "St Katharine's Way, London E1W 1LD",
		CheckIn:            "2025-06-19",
		CheckOut:           "2025-06-22",
		FreeCancelDeadline: "2025-06-14",
		Status:             entities.LodgingStatusConfirmed,
	},
}

type LodgingRepository interface {
	Load(ctx context.Context) ([]entities.Lodging, error)
	Persist(ctx context.Context, items []entities.Lodging) error
}

func NewLodgingRepository(store infra.BlobStore) LodgingRepository {
	return NewEntityStore[entities.Lodging](store, lodgingStorageKey, lodgingSeed)
}
