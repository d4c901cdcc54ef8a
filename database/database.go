// database.go - Handles database connection, migration and admin seeding

package database

import (
	"go-asset-backend/config"
	"go-asset-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database, runs migrations and seeds the default admin.
// A DATABASE_URL selects Postgres (deployment); otherwise a local sqlite
// file is used. The returned handle lives for the process lifetime.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		// sqlite leaves foreign_keys off per connection unless the DSN asks
		// for it; without this the CreatedBy constraint is never enforced.
		dialector = sqlite.Open(cfg.DBPath + "?_foreign_keys=on")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Asset{}); err != nil {
		return nil, err
	}

	if err := createDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// createDefaultAdmin creates the bootstrap admin account if none exists with
// the configured email. The credentials come from the environment so they can
// be rotated per deployment.
func createDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
