package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/home-services-backend/cron"
	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/redis"
	"github.com/meinhoongagan/home-services-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupStatsRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
