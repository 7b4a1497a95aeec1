package database

import (
	"fmt"

	"github.com/brightpage/admin-core/internal/config"
	"github.com/brightpage/admin-core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection pool and runs auto-migration. The returned
// handle is passed explicitly into each module; nothing reads it as ambient
// global state.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true, // duplicate keys surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminModel{},
		&models.BannerModel{},
		&models.CategoryModel{},
		&models.NewsModel{},
		&models.EventModel{},
		&models.TestimonialModel{},
		&models.CmsModel{},
		&models.ContactModel{},
		&models.NewsletterModel{},
	)
}
