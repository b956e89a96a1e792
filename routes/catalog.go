package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

func SetupCatalogRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/categories", controllers.GetCategories)
	api.Get("/services", controllers.GetServices)
	api.Get("/services/by_provider/:providerId", controllers.GetServicesByProvider)
	api.Get("/services/:serviceId/reviews", controllers.GetServiceReviews)
	api.Get("/services/:id", controllers.GetService)
}
