package guide_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideVisitedRepo, provideGuideService, provideWeatherService)

func provideVisitedRepo(store infra.BlobStore) repositories.VisitedRepository {
	return repositories.NewVisitedRepository(store)
}

func provideGuideService(visited repositories.VisitedRepository) services.GuideServiceInterface {
	return services.NewGuideService(visited)
}

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService()
}
