package postgres

import (
	"fmt"

	"go-jobboard-backend/internal/domain"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&domain.Email{},
		&domain.IndustryType{},
		&domain.Status{},
		&domain.PersonName{},
		&domain.User{},
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}
	return nil
}
