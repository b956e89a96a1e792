package services

import (
	"errors"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
	"gorm.io/gorm"
)

// ProviderService manages a provider's capability set, availability windows
// and qualification documents.
type ProviderService struct {
	db *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{db: db}
}

// CapabilityServices returns the services a provider can actually fulfill.
func (s *ProviderService) CapabilityServices(providerID uint) ([]models.Service, error) {
	var links []models.ProviderService
	if err := s.db.Where("provider_id = ?", providerID).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []models.Service{}, nil
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ServiceID)
	}
	var services []models.Service
	if err := s.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// AddCapability links a service to a provider. Adding an existing link
// returns the existing row unchanged.
func (s *ProviderService) AddCapability(providerID, serviceID uint) (*models.ProviderService, error) {
	var existing models.ProviderService
	err := s.db.Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	link := models.ProviderService{
		ProviderID: providerID,
		ServiceID:  serviceID,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *ProviderService) RemoveCapability(providerID, serviceID uint) error {
	return s.db.Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		Delete(&models.ProviderService{}).Error
}

// ReplaceCapabilities rewrites the whole capability set: every existing link
// is dropped and the given services are re-linked. Not a diff.
func (s *ProviderService) ReplaceCapabilities(providerID uint, serviceIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).
			Delete(&models.ProviderService{}).Error; err != nil {
			return err
		}
		for _, serviceID := range serviceIDs {
			link := models.ProviderService{
				ProviderID: providerID,
				ServiceID:  serviceID,
				CreatedAt:  time.Now(),
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ProviderService) AddAvailability(a *models.ProviderAvailability) error {
	return s.db.Create(a).Error
}

// BookAvailability flips the booked flag. Missing ids are a no-op.
func (s *ProviderService) BookAvailability(id uint) error {
	var window models.ProviderAvailability
	if err := s.db.First(&window, id).Error; err != nil {
		return nil
	}
	window.IsBooked = true
	return s.db.Save(&window).Error
}

func (s *ProviderService) AddDocument(d *models.ProviderDocument) error {
	d.Status = models.ProviderPending
	d.SubmittedAt = time.Now()
	return s.db.Create(d).Error
}

// ReviewDocument records the outcome of a document check. Missing ids are a
// no-op.
func (s *ProviderService) ReviewDocument(id uint, status string, reviewerID *uint) error {
	var document models.ProviderDocument
	if err := s.db.First(&document, id).Error; err != nil {
		return nil
	}
	now := time.Now()
	document.Status = status
	document.ReviewerID = reviewerID
	document.ReviewedAt = &now
	return s.db.Save(&document).Error
}
