package request_models

type CreateChecklistItemRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

// UpdateChecklistItemRequest replaces the item wholesale; it is not a
// field-level merge.
type UpdateChecklistItemRequest struct {
	Title   string `json:"title"`
	Done    bool   `json:"done"`
	DueDate string `json:"due_date"`
}
