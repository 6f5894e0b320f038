package models

import "gorm.io/gorm"

// Migrate runs the schema auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Product{},
		&Variant{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Address{},
		&WishlistItem{},
		&Review{},
		&Notification{},
	)
}
