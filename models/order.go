package models

import (
	"time"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Order is derived 1:1 from an appointment. The unique index on
// AppointmentID is what ultimately guarantees at most one order per
// appointment; the service-layer existence check alone has a race window.
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	AppointmentID uint      `json:"appointment_id" gorm:"uniqueIndex"`
	OrderNumber   string    `json:"order_number" gorm:"uniqueIndex"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod *string   `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
