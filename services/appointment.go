package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
	"gorm.io/gorm"
)

// TimeLayout is the ISO local date-time format appointments are booked with.
const TimeLayout = "2006-01-02T15:04:05"

// AppointmentService owns the appointment state machine: creation with
// provider auto-matching, status transitions, rescheduling and provider
// reassignment. Every successful creation immediately derives an order.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type CreateAppointmentInput struct {
	CustomerID      uint     `json:"customerId"`
	ServiceID       uint     `json:"serviceId"`
	AppointmentTime string   `json:"appointmentTime"`
	DurationHours   *float64 `json:"durationHours"`
	Address         string   `json:"address"`
	ProviderID      *uint    `json:"providerId"`
}

// Create validates the customer and service, computes the frozen price,
// auto-matches a provider when none is given and persists the appointment
// together with its derived order.
func (s *AppointmentService) Create(in CreateAppointmentInput) (*models.Appointment, error) {
	var customer models.User
	if err := s.db.First(&customer, in.CustomerID).Error; err != nil {
		return nil, fmt.Errorf("invalid customerId or serviceId: %w", ErrNotFound)
	}
	var service models.Service
	if err := s.db.First(&service, in.ServiceID).Error; err != nil {
		return nil, fmt.Errorf("invalid customerId or serviceId: %w", ErrNotFound)
	}

	when, err := time.Parse(TimeLayout, in.AppointmentTime)
	if err != nil {
		return nil, fmt.Errorf("expected ISO format yyyy-MM-ddTHH:mm:ss: %w", ErrInvalidTimeFormat)
	}

	duration := 1.0
	if in.DurationHours != nil {
		duration = *in.DurationHours
	}

	appointment := models.Appointment{
		CustomerID:      in.CustomerID,
		ServiceID:       in.ServiceID,
		ProviderID:      in.ProviderID,
		AppointmentTime: when,
		DurationHours:   duration,
		Price:           service.Price * duration,
		Address:         in.Address,
		Status:          models.StatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if appointment.ProviderID == nil {
			matched, err := matchProvider(tx, appointment.ServiceID)
			if err != nil {
				return err
			}
			appointment.ProviderID = matched
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		_, err := NewOrderService(tx).CreateFromAppointment(&appointment)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Reload with relations resolved so the caller can render names.
	if err := s.db.Preload("Customer").Preload("Service").Preload("Provider.User").
		First(&appointment, appointment.ID).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// matchProvider picks the approved provider with the highest rating among
// those whose capability set includes the service. Providers without a
// rating rank below any rated provider. Returns nil when nobody is eligible
// so the appointment stays unassigned.
func matchProvider(tx *gorm.DB, serviceID uint) (*uint, error) {
	var capabilities []models.ProviderService
	if err := tx.Where("service_id = ?", serviceID).Find(&capabilities).Error; err != nil {
		return nil, err
	}
	if len(capabilities) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(capabilities))
	for _, c := range capabilities {
		ids = append(ids, c.ProviderID)
	}

	var providers []models.ServiceProvider
	if err := tx.Where("id IN ? AND status = ?", ids, models.ProviderApproved).
		Find(&providers).Error; err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, nil
	}

	sort.SliceStable(providers, func(i, j int) bool {
		ri, rj := providers[i].Rating, providers[j].Rating
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri > *rj
	})

	best := providers[0].ID
	return &best, nil
}

// UpdateStatus sets the status on an existing appointment. Missing ids are a
// no-op. Accepting an appointment re-derives the order as a safety net; the
// derivation is idempotent so no duplicate is created.
func (s *AppointmentService) UpdateStatus(id uint, status string) error {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return nil
	}
	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	if err := s.db.Save(&appointment).Error; err != nil {
		return err
	}
	if status == models.StatusAccepted {
		_, err := NewOrderService(s.db).CreateFromAppointment(&appointment)
		return err
	}
	return nil
}

// Reschedule moves an appointment to a new time and resets it to pending so
// it re-enters the approval flow. The price is deliberately not recomputed.
// A non-blank address replaces the old one.
func (s *AppointmentService) Reschedule(id uint, newTime, address string) error {
	when, err := time.Parse(TimeLayout, newTime)
	if err != nil {
		return fmt.Errorf("expected ISO format yyyy-MM-ddTHH:mm:ss: %w", ErrInvalidTimeFormat)
	}
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return nil
	}
	appointment.AppointmentTime = when
	appointment.Status = models.StatusPending
	if trimmed := strings.TrimSpace(address); trimmed != "" {
		appointment.Address = trimmed
	}
	appointment.UpdatedAt = time.Now()
	return s.db.Save(&appointment).Error
}

// UpdateAddress changes only the service address.
func (s *AppointmentService) UpdateAddress(id uint, address string) error {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return nil
	}
	appointment.Address = strings.TrimSpace(address)
	appointment.UpdatedAt = time.Now()
	return s.db.Save(&appointment).Error
}

// ReassignProvider sets or clears the provider on an appointment. Completed
// appointments cannot be reassigned.
func (s *AppointmentService) ReassignProvider(id uint, providerID *uint) error {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return fmt.Errorf("appointment not found with id %d: %w", id, ErrNotFound)
	}

	if strings.EqualFold(appointment.Status, models.StatusCompleted) {
		return fmt.Errorf("cannot modify provider for completed appointment: %w", ErrInvalidState)
	}

	if providerID != nil {
		var provider models.ServiceProvider
		if err := s.db.First(&provider, *providerID).Error; err != nil {
			return fmt.Errorf("provider not found with id %d: %w", *providerID, ErrNotFound)
		}
	}

	return s.db.Model(&appointment).Updates(map[string]interface{}{
		"provider_id": providerID,
		"updated_at":  time.Now(),
	}).Error
}
