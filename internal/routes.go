package internal

import (
	"net/http"
	"npd/internal/controllers"
	"npd/internal/providers"
	"npd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/latest", http.HandlerFunc(apiController.GetLatest))
	routers.Get("/station", http.HandlerFunc(apiController.GetStation))
	routers.Get("/stations", http.HandlerFunc(apiController.GetStations))
	routers.Get("/history", http.HandlerFunc(apiController.GetHistory))
	return routers
}
