package internal

import (
	"net/http"

	"bbd/internal/controllers"
	"bbd/internal/providers"
	"bbd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, adminController *controllers.AdminController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/command", http.HandlerFunc(apiController.Command))
	routers.Get("/roster", http.HandlerFunc(adminController.GetRoster))
	routers.Put("/roster", http.HandlerFunc(adminController.PutRoster))
	return routers
}
