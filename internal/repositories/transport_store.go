package repositories

import (
	"context"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
)

const transportStorageKey = "viagem_deslocamentos_data"

var transportSeed = []entities.TransportLeg{
	{ID: "1", Origin: "Brazil", Destination: "Paris", Datetime: "2025-06-15T08:00", Mode: entities.TransportModeFlight, Carrier: "Air France", Status: entities.TransportStatusPaid, TicketRef: "AF123456"},
	{ID: "2", Origin: "Paris", Destination: "London", Datetime: "2025-06-19T10:30", Mode: entities.TransportModeTrain, Carrier: "Eurostar", Status: entities.TransportStatusPaid, TicketRef: "ES7890"},
	{ID: "3", Origin: "London", Destination: "Brussels", Datetime: "2025-06-22T14:00", Mode: entities.TransportModeTrain, Carrier: "Eurostar", Status: entities.TransportStatusPending},
}

type TransportRepository interface {
	Load(ctx context.Context) ([]entities.TransportLeg, error)
	Persist(ctx context.Context, items []entities.TransportLeg) error
}

func NewTransportRepository(store infra.BlobStore) TransportRepository {
	return NewEntityStore[entities.TransportLeg](store, transportStorageKey, transportSeed)
}
