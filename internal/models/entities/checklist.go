package entities

// ChecklistItem is one pre-trip task. Completion is a boolean toggle.
type ChecklistItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	DueDate   string `json:"due_date,omitempty"`
	CreatedBy string `json:"created_by"`
}
