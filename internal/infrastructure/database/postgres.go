package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autoforge/dealership-api/internal/config"
	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Accounts
		&entity.User{},

		// Inventory
		&entity.Dealer{},
		&entity.Vehicle{},

		// Sales
		&entity.Quote{},
		&entity.Contract{},
		&entity.Order{},

		// After-sales
		&entity.DefectReport{},
		&entity.DefectAttachment{},

		// System
		&entity.CatalogItem{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the settings catalogs and the initial admin account
func SeedDefaultData(db *gorm.DB, adminEmail, adminPassword string) error {
	log.Println("Seeding default data...")

	catalogDefaults := map[enum.CatalogKind][]string{
		enum.CatalogAccessory: {"Tow hook", "Roof rack", "Winter tyres", "Alarm system", "Safety kit"},
		enum.CatalogModel:     {"Panda", "500", "Tipo", "Ducato", "Doblo"},
		enum.CatalogTrim:      {"Base", "Lounge", "Sport", "Cross"},
		enum.CatalogColor:     {"White", "Black", "Red", "Blue", "Grey"},
	}

	for kind, labels := range catalogDefaults {
		for i, label := range labels {
			var existing entity.CatalogItem
			err := db.Where("kind = ? AND label = ?", kind, label).First(&existing).Error
			if err == nil {
				continue
			}
			item := entity.CatalogItem{Kind: kind, Label: label, Position: i, Active: true}
			if err := db.Create(&item).Error; err != nil {
				log.Printf("Warning: failed to seed catalog item %s/%s: %v", kind, label, err)
			}
		}
	}

	// Initial admin account, created only when no user exists yet
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			FirstName: "Admin",
			LastName:  "User",
			Email:     adminEmail,
			Password:  string(hash),
			Role:      entity.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Seeded admin user %s", adminEmail)
	}

	log.Println("Default data seeding completed")
	return nil
}
