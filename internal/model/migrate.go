package model

import "gorm.io/gorm"

// Migrate creates or updates the tables for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Snack{},
		&Transaction{},
		&SnackRequest{},
	)
}
