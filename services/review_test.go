package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
)

func TestSubmitReviewCreatesAndRatesProvider(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	customer := seedCustomer(t, db, "alice")
	provider := seedProvider(t, db, "bob", models.ProviderApproved, nil)

	review, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 1,
		CustomerID:    customer.ID,
		ProviderID:    provider.ID,
		Rating:        4,
		Comment:       "quick and tidy",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if review.ID == 0 {
		t.Fatal("expected review to be persisted")
	}

	var refreshed models.ServiceProvider
	if err := db.First(&refreshed, provider.ID).Error; err != nil {
		t.Fatalf("failed to reload provider: %v", err)
	}
	if refreshed.Rating == nil || *refreshed.Rating != 4.0 {
		t.Fatalf("expected provider rating 4.0, got %v", refreshed.Rating)
	}
}

func TestSubmitReviewUpsertsByAppointment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	customer := seedCustomer(t, db, "alice")
	provider := seedProvider(t, db, "bob", models.ProviderApproved, nil)

	first, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 7,
		CustomerID:    customer.ID,
		ProviderID:    provider.ID,
		Rating:        2,
		Comment:       "late",
	})
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	second, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 7,
		CustomerID:    customer.ID,
		ProviderID:    provider.ID,
		Rating:        5,
		Comment:       "made up for it",
	})
	if err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same review row, got %d and %d", first.ID, second.ID)
	}
	if second.Rating != 5 || second.Comment != "made up for it" {
		t.Fatalf("expected updated rating and comment, got %d %q", second.Rating, second.Comment)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected creation time preserved, got %v then %v", first.CreatedAt, second.CreatedAt)
	}

	var count int64
	db.Model(&models.Review{}).Where("appointment_id = ?", 7).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single review for the appointment, got %d", count)
	}

	var refreshed models.ServiceProvider
	if err := db.First(&refreshed, provider.ID).Error; err != nil {
		t.Fatalf("failed to reload provider: %v", err)
	}
	if refreshed.Rating == nil || *refreshed.Rating != 5.0 {
		t.Fatalf("expected provider rating 5.0 after update, got %v", refreshed.Rating)
	}
}

func TestSubmitReviewAveragesAcrossAppointments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	customer := seedCustomer(t, db, "alice")
	provider := seedProvider(t, db, "bob", models.ProviderApproved, nil)

	ratings := []int{5, 4, 2}
	for i, r := range ratings {
		_, err := svc.Submit(SubmitReviewInput{
			AppointmentID: uint(i + 1),
			CustomerID:    customer.ID,
			ProviderID:    provider.ID,
			Rating:        r,
		})
		if err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	var refreshed models.ServiceProvider
	if err := db.First(&refreshed, provider.ID).Error; err != nil {
		t.Fatalf("failed to reload provider: %v", err)
	}
	want := (5.0 + 4.0 + 2.0) / 3.0
	if refreshed.Rating == nil || *refreshed.Rating != want {
		t.Fatalf("expected provider rating %v, got %v", want, refreshed.Rating)
	}
}

func TestSubmitReviewInsertFailureKeepsOriginalError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	customer := seedCustomer(t, db, "alice")
	provider := seedProvider(t, db, "bob", models.ProviderApproved, nil)

	// Reject every insert at the database level. With no existing row the
	// failure is not a duplicate, so the database error must come back
	// unwrapped instead of the duplicate message.
	if err := db.Exec(`CREATE TRIGGER reviews_block_insert BEFORE INSERT ON reviews
		BEGIN SELECT RAISE(ABORT, 'insert blocked'); END;`).Error; err != nil {
		t.Fatalf("failed to create trigger: %v", err)
	}

	_, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 1,
		CustomerID:    customer.ID,
		ProviderID:    provider.ID,
		Rating:        4,
	})
	if err == nil {
		t.Fatal("expected Submit to fail")
	}
	if errors.Is(err, ErrDuplicateReview) {
		t.Fatalf("expected the database error, got the duplicate sentinel: %v", err)
	}
	if !strings.Contains(err.Error(), "insert blocked") {
		t.Fatalf("expected the original insert error, got: %v", err)
	}
}

func TestSubmitReviewSkipsUnknownProvider(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	customer := seedCustomer(t, db, "alice")

	// Unset provider: the review is stored, no rating update is attempted.
	if _, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 1,
		CustomerID:    customer.ID,
		ProviderID:    0,
		Rating:        3,
	}); err != nil {
		t.Fatalf("Submit without provider failed: %v", err)
	}

	// Provider id that matches no row is equally silent.
	if _, err := svc.Submit(SubmitReviewInput{
		AppointmentID: 2,
		CustomerID:    customer.ID,
		ProviderID:    999,
		Rating:        3,
	}); err != nil {
		t.Fatalf("Submit with unknown provider failed: %v", err)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected both reviews stored, got %d", count)
	}
}
