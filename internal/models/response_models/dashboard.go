package response_models

import "roteiro/internal/models/entities"

// TripSummary aggregates the per-collection derived views into one
// read-only dashboard payload.
type TripSummary struct {
	ChecklistDone  int                    `json:"checklist_done"`
	ChecklistTotal int                    `json:"checklist_total"`
	LodgingCount   int                    `json:"lodging_count"`
	MemberCount    int                    `json:"member_count"`
	MemoryCount    int                    `json:"memory_count"`
	NextLeg        *entities.TransportLeg `json:"next_leg,omitempty"`
}
