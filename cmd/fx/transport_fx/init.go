package transport_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/infra"
	"roteiro/internal/repositories"
	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideTransportRepo, provideTransportService)

func provideTransportRepo(store infra.BlobStore) repositories.TransportRepository {
	return repositories.NewTransportRepository(store)
}

func provideTransportService(repo repositories.TransportRepository) services.TransportServiceInterface {
	return services.NewTransportService(repo)
}
