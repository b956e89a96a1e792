package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
	"github.com/meinhoongagan/home-services-backend/middleware"
)

// SetupAuthRoutes configures login, registration and the email verification
// code flow.
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", controllers.Login)
	api.Post("/register", controllers.Register)

	auth := api.Group("/auth")
	auth.Post("/send_verification_code", controllers.SendVerificationCode)
	auth.Post("/verify_code", controllers.VerifyCode)
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
