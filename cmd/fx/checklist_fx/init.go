package checklist_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideChecklistRepo, provideChecklistService)

func provideChecklistRepo(store infra.BlobStore) repositories.ChecklistRepository {
	return repositories.NewChecklistRepository(store)
}

func provideChecklistService(repo repositories.ChecklistRepository) services.ChecklistServiceInterface {
	return services.NewChecklistService(repo)
}
