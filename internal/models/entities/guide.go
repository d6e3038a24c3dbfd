package entities

// Destination is one point of interest in the built-in guide catalog.
// The catalog itself is fixed; only the visited set is persisted.
type Destination struct {
	ID          string `json:"id"`
	City        string `json:"city"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Hours       string `json:"hours"`
	Category    string `json:"category"`
}
