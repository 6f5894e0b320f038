package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is an address-book entry. Checkout copies the chosen entry into
// the order's shipping snapshot; it is never referenced live afterwards.
type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string    `gorm:"not null" json:"name"`
	Phone      string    `gorm:"size:20" json:"phone,omitempty"`
	Street     string    `gorm:"not null" json:"street"`
	City       string    `gorm:"not null" json:"city"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `gorm:"not null" json:"postal_code"`
	Country    string    `gorm:"size:2;not null" json:"country"`
	IsDefault  bool      `gorm:"default:false" json:"is_default"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
