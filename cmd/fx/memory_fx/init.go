package memory_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideMemoryRepo, provideMemoryService)

func provideMemoryRepo(store infra.BlobStore) repositories.MemoryRepository {
	return repositories.NewMemoryRepository(store)
}

func provideMemoryService(repo repositories.MemoryRepository) services.MemoryServiceInterface {
	return services.NewMemoryService(repo)
}
