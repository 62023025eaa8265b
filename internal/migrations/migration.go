package migrations

import (
	"errors"
	"log"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"
	"resto_manager/internal/services"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the default admin user
// and the singleton settings row.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Parent tables before child tables.
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.InventoryItem{},
		&models.MenuItem{},
		&models.MenuItemIngredient{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Settings{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the admin account and the settings row.
func createDefaultData(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	settingsRepo := repository.NewSettingsRepository(db)

	if _, err := userRepo.GetByUsernameOrEmail("admin"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		log.Println("Creating default admin user...")
		admin := &models.User{
			Username:  "admin",
			Email:     "admin@restaurant.local",
			FirstName: "System",
			LastName:  "Administrator",
			Role:      string(models.RoleAdmin),
			IsActive:  true,
		}
		if err := userService.CreateUser(admin, "admin123"); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Default admin created (username: admin)")
		}
	}

	// The settings row is created here, not lazily on first read.
	if _, err := settingsRepo.Get(); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		log.Println("Creating default settings...")
		if err := settingsRepo.Create(models.DefaultSettings()); err != nil {
			log.Printf("Warning: Failed to create default settings: %v", err)
		}
	}

	return nil
}
