package entities

// MemoryEntry is one photo/note in the trip log. The collection is kept
// newest-first. Photo holds the embedded image as a data URL; no size
// limit is enforced.
type MemoryEntry struct {
	ID        string `json:"id"`
	Place     string `json:"place"`
	Timestamp string `json:"timestamp"`
	Photo     string `json:"photo,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedBy string `json:"created_by"`
}
