package dashboard_fx

import (
	"go.uber.org/fx"

	"roteiro/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	checklist services.ChecklistServiceInterface,
	lodgings services.LodgingServiceInterface,
	transport services.TransportServiceInterface,
	members services.MemberServiceInterface,
	memories services.MemoryServiceInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(checklist, lodgings, transport, members, memories)
}
