package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product verification states. Only Approved products are visible to
// customers; a seller edit resets the product to Pending.
const (
	VerificationPending  = "Pending"
	VerificationApproved = "Approved"
	VerificationRejected = "Rejected"
)

// Product is seller-owned catalog stock. SellerID is nullable for rows
// created directly by an admin.
type Product struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID           *uuid.UUID `gorm:"type:uuid;index" json:"seller_id,omitempty"`
	Name               string     `gorm:"not null" json:"name"`
	Description        string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	Price              float64    `gorm:"not null" json:"price"`
	DiscountedPrice    *float64   `json:"discounted_price,omitempty"`
	Gender             string     `gorm:"index" json:"gender,omitempty"`
	Category           string     `gorm:"index" json:"category,omitempty"`
	Stock              int        `gorm:"default:0" json:"stock"`
	VerificationStatus string     `gorm:"type:varchar(20);not null;default:'Pending';index" json:"verification_status"`
	Variants           []Variant  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variant is one size/color combination of a product. When a product has
// variants, cart and checkout operations must reference one.
type Variant struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Size      string    `gorm:"size:20" json:"size,omitempty"`
	Color     string    `gorm:"size:40" json:"color,omitempty"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateProductRequest is the seller payload for a new product. The
// product starts Pending until an admin approves it.
type CreateProductRequest struct {
	Name            string           `json:"name" binding:"required"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"image_url"`
	Price           float64          `json:"price" binding:"required,gt=0"`
	DiscountedPrice *float64         `json:"discounted_price"`
	Gender          string           `json:"gender"`
	Category        string           `json:"category"`
	Stock           int              `json:"stock" binding:"min=0"`
	Variants        []VariantRequest `json:"variants"`
}

// UpdateProductRequest edits a product. Any accepted edit resets the
// verification status to Pending.
type UpdateProductRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"image_url"`
	Price           *float64 `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	Gender          *string  `json:"gender"`
	Category        *string  `json:"category"`
	Stock           *int     `json:"stock"`
}

// VariantRequest creates or edits one size/color combination.
type VariantRequest struct {
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Stock    int     `json:"stock" binding:"min=0"`
	ImageURL string  `json:"image_url"`
}

// BulkUpdateRequest applies the same field changes to many products.
type BulkUpdateRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required,min=1"`
	Category   *string     `json:"category"`
	Gender     *string     `json:"gender"`
	Discount   *float64    `json:"discounted_price"`
	Stock      *int        `json:"stock"`
}

// PresignUploadRequest asks for a direct-to-S3 image upload URL.
type PresignUploadRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

// ProductFilter narrows catalog listings. Customer-facing queries always
// pin VerificationStatus to Approved regardless of what the caller sent.
type ProductFilter struct {
	Gender             string
	Category           string
	Name               string
	MinPrice           *float64
	MaxPrice           *float64
	SellerID           *uuid.UUID
	VerificationStatus string
}
