package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
	"gorm.io/gorm"
)

// OrderService derives billing orders from appointments and flips their
// payment status. Derivation is idempotent: one order per appointment, ever.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// generateOrderNumber composes ORD + yyyyMMdd + a random 6-digit suffix and
// retries on collision. After 100 collisions it falls back to the last six
// digits of the current epoch millis so generation always terminates.
func (s *OrderService) generateOrderNumber() string {
	dateStr := time.Now().Format("20060102")
	for attempts := 0; attempts < 100; attempts++ {
		candidate := fmt.Sprintf("ORD%s%d", dateStr, 100000+rand.Intn(900000))
		var count int64
		s.db.Model(&models.Order{}).Where("order_number = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
	}
	return fmt.Sprintf("ORD%s%06d", dateStr, time.Now().UnixMilli()%1_000_000)
}

// CreateFromAppointment returns the existing order for the appointment if
// one exists, otherwise creates it with the appointment's frozen price. When
// a concurrent writer wins the insert race the unique index rejects ours and
// the existing row is returned instead.
func (s *OrderService) CreateFromAppointment(appointment *models.Appointment) (*models.Order, error) {
	var existing models.Order
	err := s.db.Where("appointment_id = ?", appointment.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	order := models.Order{
		AppointmentID: appointment.ID,
		OrderNumber:   s.generateOrderNumber(),
		Amount:        appointment.Price,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		if fetchErr := s.db.Where("appointment_id = ?", appointment.ID).
			First(&existing).Error; fetchErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &order, nil
}

// Pay marks an order as paid. Missing ids are a no-op; amount and method
// validation belong to the payment gateway, not this layer.
func (s *OrderService) Pay(id uint) error {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil
	}
	order.PaymentStatus = models.PaymentPaid
	order.UpdatedAt = time.Now()
	return s.db.Save(&order).Error
}
