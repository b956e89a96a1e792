package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
	"github.com/meinhoongagan/home-services-backend/utils"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

func GetServices(c *fiber.Ctx) error {
	var list []models.Service
	if err := db.DB.Find(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(list)
}

// GetService is one of the explicit find-or-404 endpoints.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// GetServicesByProvider lists the services a provider can fulfill.
func GetServicesByProvider(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	list, err := services.NewProviderService(db.DB).CapabilityServices(uint(providerID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(list)
}
