package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roteiro/pkg/utils"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		adminEmail string
		want       string
	}{
		{"admin email", "fabiana@email.com", "fabiana@email.com", utils.RoleAdmin},
		{"default admin", "fabiana@email.com", "", utils.RoleAdmin},
		{"other email", "joao@email.com", "fabiana@email.com", utils.RoleMember},
		{"case differs", "Fabiana@email.com", "fabiana@email.com", utils.RoleMember},
		{"empty email", "", "fabiana@email.com", utils.RoleMember},
		{"not an email", "fabiana", "fabiana@email.com", utils.RoleMember},
		{"custom admin", "ops@crew.io", "ops@crew.io", utils.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ResolveRole(tt.email, tt.adminEmail))
		})
	}
}
