package models

import (
	"time"
)

// Appointment statuses the lifecycle cares about. Status is stored as a
// plain string so the generic status update can carry other values (e.g. a
// cancellation reason status), but these three drive the state machine.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment links a customer, an optional provider, a service, a time and
// a price. Price is computed once at creation (service price x duration) and
// never recomputed, not even on reschedule.
type Appointment struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	CustomerID      uint             `json:"customer_id"`
	Customer        User             `json:"customer" gorm:"foreignKey:CustomerID"`
	ProviderID      *uint            `json:"provider_id"`
	Provider        *ServiceProvider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID       uint             `json:"service_id"`
	Service         Service          `json:"service" gorm:"foreignKey:ServiceID"`
	AppointmentTime time.Time        `json:"appointment_time"`
	DurationHours   float64          `json:"duration_hours"`
	Price           float64          `json:"price"`
	Address         string           `json:"address"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
