package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-backend/controllers"
)

// SetupAppointmentRoutes configures the appointment lifecycle endpoints.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/api/appointments")

	appointment.Get("/", controllers.GetAppointments)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Post("/:id/status", controllers.UpdateAppointmentStatus)
	appointment.Post("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Post("/:id/address", controllers.UpdateAppointmentAddress)
	appointment.Post("/:id/provider", controllers.UpdateAppointmentProvider)
	appointment.Post("/:id/reminder", controllers.SendAppointmentReminder)
}
