package models

import (
	"time"
)

// Review holds one rating per appointment. A second submission for the same
// appointment updates the existing row in place; the unique index backs that
// upsert against concurrent writers.
type Review struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	AppointmentID uint      `json:"appointment_id" gorm:"uniqueIndex"`
	CustomerID    uint      `json:"customer_id"`
	ProviderID    uint      `json:"provider_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}
