package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/home-services-backend/models"
)

// Migrate connects and applies the schema. It is an operator entry point
// run manually against a fresh database; the server does not migrate on
// boot.
func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
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
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
