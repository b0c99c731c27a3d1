package database

import (
	"fmt"

	"amora_backend/internal/config"
	"amora_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the configured database URL.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model. The users
// table is owned by the identity provider in hosted deployments; it is
// still listed here so self-hosted setups get a complete schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.ProfilePhoto{},
		&models.Swipe{},
		&models.Match{},
		&models.Message{},
		&models.Block{},
		&models.Report{},
		&models.Verification{},
		&models.Interest{},
	)
}
