package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

func SetupUserRoutes(app *fiber.App) {
	api := app.Group("/api")

	user := api.Group("/users")
	user.Get("/", controllers.GetUsers)
	user.Put("/:id/status", controllers.UpdateUserStatus)
	user.Put("/:id", controllers.UpdateUserProfile)
	user.Post("/:id/profile_picture", controllers.UploadProfilePicture)

	api.Get("/messages", controllers.GetMessages)
	api.Post("/messages", controllers.SendMessage)
}
