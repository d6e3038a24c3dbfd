package response_models

import "roteiro/internal/models/entities"

type LoginResponse struct {
	Token   string               `json:"token"`
	Profile entities.UserProfile `json:"profile"`
}
