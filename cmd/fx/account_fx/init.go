package account_fx

import (
	"os"

	"go.uber.org/fx"

	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService)

func provideAccountService() services.AccountServiceInterface {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = utils.DefaultAdminEmail
	}
	return services.NewAccountService(adminEmail, os.Getenv("ADMIN_PASSWORD_HASH"))
}
