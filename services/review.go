package services

import (
	"errors"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
	"gorm.io/gorm"
)

// ReviewService upserts one review per appointment and keeps the provider's
// aggregate rating in sync.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type SubmitReviewInput struct {
	AppointmentID uint   `json:"appointmentId"`
	CustomerID    uint   `json:"customerId"`
	ProviderID    uint   `json:"providerId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// Submit updates the existing review for the appointment in place (keeping
// its creation timestamp) or inserts a new one, then recomputes the
// provider's average rating over all of their reviews. A concurrent insert
// losing against the unique index is retried as an update.
func (s *ReviewService) Submit(in SubmitReviewInput) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("appointment_id = ?", in.AppointmentID).First(&review).Error
	switch {
	case err == nil:
		review.Rating = in.Rating
		review.Comment = in.Comment
		if err := s.db.Save(&review).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			AppointmentID: in.AppointmentID,
			CustomerID:    in.CustomerID,
			ProviderID:    in.ProviderID,
			Rating:        in.Rating,
			Comment:       in.Comment,
			CreatedAt:     time.Now(),
		}
		if err := s.db.Create(&review).Error; err != nil {
			// Possibly lost the insert race: the unique index on
			// appointment_id rejected us. Fall back to updating the
			// winner's row. When no row exists the insert failed for
			// some other reason, so the create error stands.
			var existing models.Review
			if fetchErr := s.db.Where("appointment_id = ?", in.AppointmentID).
				First(&existing).Error; fetchErr != nil {
				if errors.Is(fetchErr, gorm.ErrRecordNotFound) {
					return nil, err
				}
				return nil, ErrDuplicateReview
			}
			existing.Rating = in.Rating
			existing.Comment = in.Comment
			if err := s.db.Save(&existing).Error; err != nil {
				return nil, err
			}
			review = existing
		}
	default:
		return nil, err
	}

	s.refreshProviderRating(review.ProviderID)
	return &review, nil
}

// refreshProviderRating recomputes the arithmetic mean of all ratings for
// the provider. An unset provider id or a missing provider row skips the
// update silently.
func (s *ReviewService) refreshProviderRating(providerID uint) {
	if providerID == 0 {
		return
	}

	var provider models.ServiceProvider
	if err := s.db.First(&provider, providerID).Error; err != nil {
		return
	}

	var reviews []models.Review
	if err := s.db.Where("provider_id = ?", providerID).Find(&reviews).Error; err != nil {
		return
	}
	if len(reviews) == 0 {
		return
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	provider.Rating = &avg
	s.db.Save(&provider)
}
