//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"npd/internal"
	"npd/internal/controllers"
	"npd/internal/providers"
	"npd/internal/scraper"
	"npd/internal/scraper/interfaces"
	"npd/internal/services"
	"npd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewStationService,
		scraper.NewZstdCompressor,
		scraper.NewPageReader,
		scraper.NewResolver,
		scraper.NewAssembler,
		scraper.NewFileManager,
		scraper.NewArchiveStorage,
		scraper.NewRunner,
		scraper.NewScheduler,
		wire.Bind(new(interfaces.HistoryReaderInterface), new(*scraper.Runner)),
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
