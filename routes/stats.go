package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

func SetupStatsRoutes(app *fiber.App) {
	stats := app.Group("/api/stats")

	stats.Get("/", controllers.GetStats)
	stats.Get("/today_visitors", controllers.GetTodayVisitors)
	stats.Get("/today_orders", controllers.GetTodayOrders)
	stats.Get("/revenue_by_month", controllers.GetRevenueByMonth)
	stats.Get("/weekly_orders", controllers.GetWeeklyOrders)
}
