package services

import (
	"fmt"
	"log"
	"strings"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/request_models"
	"roteiro/internal/models/response_models"
	"roteiro/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest) (response_models.LoginResponse, error)
}

// AccountService derives a UserProfile at login and issues a token. The
// profile is never persisted; role resolution is the single admin-email
// rule in utils.ResolveRole. When adminPasswordHash is set, the admin
// login additionally has to pass a bcrypt check; member passwords stay
// cosmetic.
type AccountService struct {
	adminEmail        string
	adminPasswordHash string
}

func NewAccountService(adminEmail, adminPasswordHash string) AccountServiceInterface {
	return &AccountService{adminEmail: adminEmail, adminPasswordHash: adminPasswordHash}
}

func (a *AccountService) Login(request request_models.LoginRequest) (response_models.LoginResponse, error) {
	email := strings.TrimSpace(request.Email)
	if email == "" {
		return response_models.LoginResponse{}, fmt.Errorf("%w: email is required", utils.ErrValidation)
	}

	role := utils.ResolveRole(email, a.adminEmail)

	if role == utils.RoleAdmin && a.adminPasswordHash != "" {
		if err := utils.ComparePasswords(a.adminPasswordHash, request.Password); err != nil {
			log.Printf("Admin login rejected for %s", email)
			return response_models.LoginResponse{}, utils.ErrInvalidCredentials
		}
	}

	profile := entities.UserProfile{
		ID:          utils.NewID(),
		Email:       email,
		Role:        role,
		DisplayName: displayName(email),
	}

	token, err := utils.CreateToken(profile.ID, profile.Email, profile.Role, profile.DisplayName)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{Token: token, Profile: profile}, nil
}

func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
