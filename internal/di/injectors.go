//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"bbd/internal"
	"bbd/internal/cache"
	"bbd/internal/controllers"
	"bbd/internal/providers"
	"bbd/internal/roster"
	"bbd/internal/scheduler"
	"bbd/internal/services"
	"bbd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewZstdCompressor,
		providers.NewStorageProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		cache.NewCacheCoordinator,
		roster.NewService,
		services.NewInstallationStore,
		services.NewViewService,
		scheduler.NewScheduler,
		controllers.NewApiController,
		controllers.NewAdminController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
