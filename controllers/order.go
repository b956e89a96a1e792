package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
	"github.com/meinhoongagan/home-services-backend/utils"
)

// GetOrders lists orders, optionally narrowed to one customer's
// appointments.
func GetOrders(c *fiber.Ctx) error {
	var orders []models.Order
	query := db.DB

	if customerID := c.QueryInt("customerId"); customerID > 0 {
		var appointmentIDs []uint
		if err := db.DB.Model(&models.Appointment{}).
			Where("customer_id = ?", customerID).
			Pluck("id", &appointmentIDs).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch orders",
				Error:   err.Error(),
			})
		}
		if len(appointmentIDs) == 0 {
			return c.JSON([]models.Order{})
		}
		query = query.Where("appointment_id IN ?", appointmentIDs)
	}

	if err := query.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// PayOrder marks the order paid. Unknown ids are a silent no-op.
func PayOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}
	if err := services.NewOrderService(db.DB).Pay(uint(id)); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
