package controllers

import (
	"github.com/gin-gonic/gin"

	"roteiro/internal/models/entities"
)

// currentUser rebuilds the actor profile from the claims the JWT middleware
// put into the request context.
func currentUser(c *gin.Context) entities.UserProfile {
	return entities.UserProfile{
		ID:          c.GetString("user_id"),
		Email:       c.GetString("email"),
		Role:        c.GetString("role"),
		DisplayName: c.GetString("display_name"),
	}
}
