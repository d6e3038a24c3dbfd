package memcache_fx

import (
	"go.uber.org/fx"

	mem "roteiro/pkg/memcache"
)

var Module = fx.Provide(provideInFlightStore)

func provideInFlightStore() mem.InFlightStore {
	return mem.NewInFlight()
}
