package lodging_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideLodgingRepo, provideSuggestionCacheRepo, provideLodgingService)

func provideLodgingRepo(store infra.BlobStore) repositories.LodgingRepository {
	return repositories.NewLodgingRepository(store)
}

func provideSuggestionCacheRepo(store infra.BlobStore) repositories.SuggestionCacheRepository {
	return repositories.NewSuggestionCacheRepository(store)
}

func provideLodgingService(repo repositories.LodgingRepository, cache repositories.SuggestionCacheRepository) services.LodgingServiceInterface {
	return services.NewLodgingService(repo, cache)
}
