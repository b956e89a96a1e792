package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
)

// SubmitReview records a rating for an appointment. A second submission for
// the same appointment overwrites the first one's rating and comment.
func SubmitReview(c *fiber.Ctx) error {
	var input services.SubmitReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.AppointmentID == 0 || input.CustomerID == 0 || input.ProviderID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "appointmentId, customerId and providerId are required",
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rating must be between 1 and 5",
		})
	}

	review, err := services.NewReviewService(db.DB).Submit(input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateReview) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A review for this appointment already exists",
			})
		}
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": "Failed to submit review: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"reviewId": review.ID,
	})
}

// GetProviderReviews lists a provider's reviews, newest first.
func GetProviderReviews(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}

	var reviews []models.Review
	if err := db.DB.Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(reviews)
}

// GetServiceReviews returns reviews for a service. The appointment join is
// not modeled yet, so this falls back to all reviews.
func GetServiceReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := db.DB.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(reviews)
}
