package response_models

import "roteiro/internal/models/entities"

// ChecklistResponse carries the items plus the completion counts the header
// badge renders ("done/total").
type ChecklistResponse struct {
	Items []entities.ChecklistItem `json:"items"`
	Done  int                      `json:"done"`
	Total int                      `json:"total"`
}
