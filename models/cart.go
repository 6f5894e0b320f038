package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product (or product-variant) line in a user's cart.
type CartItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null" json:"product_id"`
	VariantID *uuid.UUID `gorm:"type:uuid" json:"variant_id,omitempty"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// CartLine is a cart item joined with its product/variant for display.
// The assembled view is cached in Redis until the cart changes.
type CartLine struct {
	CartItem
	ProductName  string  `json:"product_name"`
	ImageURL     string  `json:"image_url,omitempty"`
	VariantSize  string  `json:"variant_size,omitempty"`
	VariantColor string  `json:"variant_color,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	LineTotal    float64 `json:"line_total"`
}

// CartView is the cached response shape for GET /cart.
type CartView struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddCartItemRequest adds (or merges) a line into the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}

// CartQuantityRequest sets an exact quantity; zero or less removes the line.
type CartQuantityRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity"`
}
