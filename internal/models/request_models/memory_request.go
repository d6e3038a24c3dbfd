package request_models

type CreateMemoryRequest struct {
	Place string `json:"place"`
	Photo string `json:"photo"`
	Notes string `json:"notes"`
}
