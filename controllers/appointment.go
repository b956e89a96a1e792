package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
	"github.com/meinhoongagan/home-services-backend/utils"
)

// statusFor maps service-layer errors onto the API's status conventions:
// lookup and validation failures are client errors, state conflicts are
// forbidden, everything else is a 500 with the original message echoed.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrInvalidTimeFormat),
		errors.Is(err, services.ErrDuplicateReview):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidState):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// GetAppointments lists appointments, optionally filtered by customer or
// provider, most recent appointment time first.
func GetAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer").Preload("Service").Preload("Provider.User")
	if customerID := c.QueryInt("customerId"); customerID > 0 {
		query = query.Where("customer_id = ?", customerID)
	} else if providerID := c.QueryInt("providerId"); providerID > 0 {
		query = query.Where("provider_id = ?", providerID)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_time DESC").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CreateAppointment books a service for a customer. See
// services.AppointmentService.Create for the matching and pricing rules.
func CreateAppointment(c *fiber.Ctx) error {
	var input services.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.CustomerID == 0 || input.ServiceID == 0 || input.AppointmentTime == "" || input.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customerId, serviceId, appointmentTime and address are required",
		})
	}

	appointment, err := services.NewAppointmentService(db.DB).Create(input)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus sets a new status. Accepted appointments get their
// order re-derived as a safety net.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := services.NewAppointmentService(db.DB).UpdateStatus(uint(id), body["status"]); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// RescheduleAppointment moves the appointment and resets it to pending.
func RescheduleAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}
	var body struct {
		NewDateTime string `json:"newDateTime"`
		Address     string `json:"address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := services.NewAppointmentService(db.DB).Reschedule(uint(id), body.NewDateTime, body.Address); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// UpdateAppointmentAddress changes only the address.
func UpdateAppointmentAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if body["address"] == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Address cannot be empty",
		})
	}

	if err := services.NewAppointmentService(db.DB).UpdateAddress(uint(id), body["address"]); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// UpdateAppointmentProvider assigns, reassigns or (with a null providerId)
// unassigns the provider. The id may arrive as a JSON number or a
// string-encoded int.
func UpdateAppointmentProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var providerID *uint
	switch v := body["providerId"].(type) {
	case nil:
		// explicit unassign
	case float64:
		u := uint(v)
		providerID = &u
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid providerId format",
			})
		}
		u := uint(parsed)
		providerID = &u
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid providerId format",
		})
	}

	if err := services.NewAppointmentService(db.DB).ReassignProvider(uint(id), providerID); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// SendAppointmentReminder triggers an ad-hoc reminder for one appointment.
func SendAppointmentReminder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		body = map[string]string{}
	}
	kind := body["type"]
	if kind == "" {
		kind = "email"
	}
	log.Printf("[REMINDER] appointment %d via %s", id, kind)
	return c.JSON(fiber.Map{"success": true})
}
