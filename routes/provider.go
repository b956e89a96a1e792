package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

// SetupProviderRoutes configures provider listing, the capability set,
// availability windows, qualification documents and reviews.
func SetupProviderRoutes(app *fiber.App) {
	api := app.Group("/api")

	provider := api.Group("/providers")
	provider.Get("/", controllers.GetProviders)
	provider.Get("/:id", controllers.GetProvider)
	provider.Get("/:id/reviews", controllers.GetProviderReviews)
	provider.Get("/:providerId/weekly_earnings", controllers.GetProviderWeeklyEarnings)

	provider.Get("/:providerId/services", controllers.GetProviderServiceList)
	provider.Post("/:providerId/services", controllers.AddProviderServiceLink)
	provider.Put("/:providerId/services", controllers.ReplaceProviderServiceLinks)
	provider.Delete("/:providerId/services/:serviceId", controllers.RemoveProviderServiceLink)

	provider.Get("/:providerId/availability", controllers.GetProviderAvailability)
	provider.Post("/:providerId/availability", controllers.AddProviderAvailability)
	api.Post("/provider_availability/:id/book", controllers.BookProviderAvailability)

	provider.Get("/:providerId/documents", controllers.GetProviderDocuments)
	provider.Post("/:providerId/documents", controllers.AddProviderDocument)
	api.Post("/provider_documents/:id/review", controllers.ReviewProviderDocument)

	api.Post("/reviews", controllers.SubmitReview)
}
