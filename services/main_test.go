package services

import (
	"testing"
	"time"

	"github.com/meinhoongagan/home-services-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database per test. Max one open
// connection so every query sees the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.ServiceProvider{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.ProviderService{},
		&models.ProviderAvailability{},
		&models.ProviderDocument{},
		&models.Appointment{},
		&models.Order{},
		&models.Review{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Name:     username,
		Role:     models.RoleCustomer,
		Status:   models.MembershipNone,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return user
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	service := models.Service{Name: name, Price: price, PriceUnit: "hour"}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return service
}

// seedProvider creates a provider (and its backing user) with the given
// approval status. rating may be nil.
func seedProvider(t *testing.T, db *gorm.DB, username, status string, rating *float64) models.ServiceProvider {
	t.Helper()
	user := models.User{
		Username: username,
		Name:     username,
		Role:     models.RoleServiceProvider,
		Status:   models.MembershipNone,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed provider user: %v", err)
	}
	provider := models.ServiceProvider{
		UserID:   user.ID,
		Status:   status,
		Rating:   rating,
		JoinDate: time.Now(),
	}
	if err := db.Create(&provider).Error; err != nil {
		t.Fatalf("failed to seed provider: %v", err)
	}
	return provider
}

func linkCapability(t *testing.T, db *gorm.DB, providerID, serviceID uint) {
	t.Helper()
	link := models.ProviderService{
		ProviderID: providerID,
		ServiceID:  serviceID,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("failed to link capability: %v", err)
	}
}

func ratingOf(v float64) *float64 {
	return &v
}
