package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/api/orders")

	order.Get("/", controllers.GetOrders)
	order.Post("/:id/pay", controllers.PayOrder)
}
