package models

import (
	"time"
)

// Provider approval statuses.
const (
	ProviderPending  = "pending"
	ProviderApproved = "approved"
	ProviderRejected = "rejected"
)

// ServiceProvider extends a User with role service_provider. Rating stays
// nil until the first review is aggregated.
type ServiceProvider struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id"`
	User         User      `json:"user" gorm:"foreignKey:UserID"`
	Status       string    `json:"status"`
	Rating       *float64  `json:"rating"`
	Introduction string    `json:"introduction"`
	JoinDate     time.Time `json:"join_date"`
}

// ProviderService is one capability row: the provider can fulfill the service.
type ProviderService struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProviderID uint      `json:"provider_id" gorm:"uniqueIndex:idx_provider_service"`
	ServiceID  uint      `json:"service_id" gorm:"uniqueIndex:idx_provider_service"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProviderAvailability is a provider-declared free window. It is not linked
// to appointments yet, only flipped to booked.
type ProviderAvailability struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProviderID uint      `json:"provider_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	IsBooked   bool      `json:"is_booked"`
}

type ProviderDocument struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ProviderID   uint       `json:"provider_id"`
	DocumentType string     `json:"document_type"`
	DocumentPath string     `json:"document_path"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewerID   *uint      `json:"reviewer_id,omitempty"`
}
