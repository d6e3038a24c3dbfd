package repositories

import (
	"context"

	"roteiro/internal/infra"
	"roteiro/internal/models/entities"
)

// Storage key kept verbatim so existing stored data keeps loading.
const checklistStorageKey = "viagemChecklist"

var checklistSeed = []entities.ChecklistItem{
	{ID: "1", Title: "Valid passports", Done: true, DueDate: "2025-01-01", CreatedBy: "admin"},
	{ID: "2", Title: "Buy Euros in cash", Done: false, DueDate: "2025-05-15", CreatedBy: "admin"},
	{ID: "3", Title: "Travel insurance booked", Done: false, DueDate: "2025-06-01", CreatedBy: "admin"},
}

type ChecklistRepository interface {
	Load(ctx context.Context) ([]entities.ChecklistItem, error)
	Persist(ctx context.Context, items []entities.ChecklistItem) error
}

func NewChecklistRepository(store infra.BlobStore) ChecklistRepository {
	return NewEntityStore[entities.ChecklistItem](store, checklistStorageKey, checklistSeed)
}
