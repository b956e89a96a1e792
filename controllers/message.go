package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/utils"
)

// GetMessages lists messages; with userId, everything sent or received by
// that user, newest first.
func GetMessages(c *fiber.Ctx) error {
	query := db.DB
	if userID := c.QueryInt("userId"); userID > 0 {
		query = query.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	var messages []models.Message
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}

func SendMessage(c *fiber.Ctx) error {
	var body struct {
		SenderID   uint   `json:"senderId"`
		ReceiverID uint   `json:"receiverId"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if body.SenderID == 0 || body.ReceiverID == 0 || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "senderId, receiverId and content are required",
		})
	}

	message := models.Message{
		SenderID:   body.SenderID,
		ReceiverID: body.ReceiverID,
		Content:    body.Content,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
