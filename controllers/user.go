package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/utils"
)

func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// UpdateUserStatus changes the membership tier. The three tiers form a
// closed set; anything else is rejected.
func UpdateUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	status := body["status"]
	if !models.IsValidMembership(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be non_member, member, or super_member",
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// UpdateUserProfile updates name, phone and email. Missing users are a
// silent no-op.
func UpdateUserProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err == nil {
		user.Name = body.Name
		user.Phone = body.Phone
		user.Email = body.Email
		user.UpdatedAt = time.Now()
		db.DB.Save(&user)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UploadProfilePicture stores a profile picture. A multipart "file" field is
// uploaded to Cloudinary; otherwise a JSON profilePicture URL is stored
// directly.
func UploadProfilePicture(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	var url string
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot read uploaded file",
			})
		}
		defer file.Close()

		uploaded, err := utils.UploadProfilePicture(file, fmt.Sprintf("user_%d", id))
		if err != nil {
			log.Printf("Cloudinary upload failed for user %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload picture: " + err.Error(),
			})
		}
		url = uploaded
	} else {
		var body map[string]string
		if err := c.BodyParser(&body); err != nil || body["profilePicture"] == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "profilePicture is required",
			})
		}
		url = body["profilePicture"]
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err == nil {
		user.ProfilePicture = url
		user.UpdatedAt = time.Now()
		db.DB.Save(&user)
	}
	return c.JSON(fiber.Map{"success": true, "profilePicture": url})
}
