package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
	"github.com/meinhoongagan/home-services-backend/utils"
)

func GetProviders(c *fiber.Ctx) error {
	var providers []models.ServiceProvider
	if err := db.DB.Preload("User").Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}

// GetProvider is one of the explicit find-or-404 endpoints.
func GetProvider(c *fiber.Ctx) error {
	id := c.Params("id")
	var provider models.ServiceProvider
	if err := db.DB.Preload("User").First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}
	return c.JSON(provider)
}

// GetProviderServiceList returns the services the provider can fulfill.
func GetProviderServiceList(c *fiber.Ctx) error {
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

// AddProviderServiceLink adds one service to the provider's capability set.
func AddProviderServiceLink(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var body struct {
		ServiceID uint `json:"serviceId"`
	}
	if err := c.BodyParser(&body); err != nil || body.ServiceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceId is required",
		})
	}

	if _, err := services.NewProviderService(db.DB).AddCapability(uint(providerID), body.ServiceID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add service: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func RemoveProviderServiceLink(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service id",
		})
	}

	if err := services.NewProviderService(db.DB).RemoveCapability(uint(providerID), uint(serviceID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove service: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReplaceProviderServiceLinks replaces the whole capability set in one call.
func ReplaceProviderServiceLinks(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var body struct {
		ServiceIDs []uint `json:"serviceIds"`
	}
	if err := c.BodyParser(&body); err != nil || body.ServiceIDs == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceIds is required",
		})
	}

	if err := services.NewProviderService(db.DB).ReplaceCapabilities(uint(providerID), body.ServiceIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update services: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetProviderAvailability(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var windows []models.ProviderAvailability
	if err := db.DB.Where("provider_id = ?", providerID).
		Order("start_time").
		Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(windows)
}

func AddProviderAvailability(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var body struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.BodyParser(&body); err != nil || body.StartTime == "" || body.EndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "startTime and endTime are required",
		})
	}
	start, err := time.Parse(services.TimeLayout, body.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid startTime format",
		})
	}
	end, err := time.Parse(services.TimeLayout, body.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid endTime format",
		})
	}

	window := models.ProviderAvailability{
		ProviderID: uint(providerID),
		StartTime:  start,
		EndTime:    end,
		IsBooked:   false,
	}
	if err := services.NewProviderService(db.DB).AddAvailability(&window); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func BookProviderAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid availability id",
		})
	}
	if err := services.NewProviderService(db.DB).BookAvailability(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetProviderDocuments(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var documents []models.ProviderDocument
	if err := db.DB.Where("provider_id = ?", providerID).Find(&documents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(documents)
}

func AddProviderDocument(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}
	var body struct {
		DocumentType string `json:"documentType"`
		DocumentPath string `json:"documentPath"`
	}
	if err := c.BodyParser(&body); err != nil || body.DocumentType == "" || body.DocumentPath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "documentType and documentPath are required",
		})
	}

	document := models.ProviderDocument{
		ProviderID:   uint(providerID),
		DocumentType: body.DocumentType,
		DocumentPath: body.DocumentPath,
	}
	if err := services.NewProviderService(db.DB).AddDocument(&document); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func ReviewProviderDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document id",
		})
	}
	var body struct {
		Status     string `json:"status"`
		ReviewerID *uint  `json:"reviewerId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := services.NewProviderService(db.DB).ReviewDocument(uint(id), body.Status, body.ReviewerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
