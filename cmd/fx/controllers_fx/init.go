package controllers_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewChecklistController),
	fx.Provide(controllers.NewLodgingController),
	fx.Provide(controllers.NewTransportController),
	fx.Provide(controllers.NewMemoryController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewGuideController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewDashboardController))
