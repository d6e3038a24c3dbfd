package response_models

import "roteiro/internal/models/entities"

type DestinationResponse struct {
	entities.Destination
	Visited bool `json:"visited"`
}
