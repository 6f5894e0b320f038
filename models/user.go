package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User model. Sellers carry StoreName and stay unapproved until an admin
// approves them; customers are approved automatically on OTP verification.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"unique;not null" json:"email"`
	Phone            string    `gorm:"size:20;index" json:"phone,omitempty"`
	Password         string    `gorm:"not null" json:"-"`
	Role             string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	StoreName        string    `gorm:"size:100" json:"store_name,omitempty"`
	IsActive         bool      `gorm:"default:false" json:"is_active"`
	IsApproved       bool      `gorm:"default:false" json:"is_approved"`
	IsBlocked        bool      `gorm:"default:false" json:"is_blocked"`
	VerificationCode string    `gorm:"size:6" json:"-"`
	CodeExpiresAt    *time.Time `json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RegisterRequest creates a customer or seller account. StoreName is
// required for sellers only.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=customer seller"`
	StoreName string `json:"store_name"`
	Phone     string `json:"phone"`
}

// VerifyOTPRequest activates an account with the emailed code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
