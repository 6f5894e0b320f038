package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types. Stock alerts reuse the message text to distinguish
// "Out of Stock" from "Low Stock".
const (
	NotificationStock    = "stock"
	NotificationOrder    = "order"
	NotificationApproval = "approval"
	NotificationPayment  = "payment"
	NotificationDispute  = "dispute"
	NotificationReturn   = "return"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidNotificationType reports whether t is one of the known types.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationStock, NotificationOrder, NotificationApproval,
		NotificationPayment, NotificationDispute, NotificationReturn:
		return true
	}
	return false
}

// Notification is a persisted inbox entry. Seller-scoped rows carry a
// SellerID; rows without one are visible to admins only.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type      string     `gorm:"not null;index" json:"type"`
	Message   string     `gorm:"type:text" json:"message"`
	SellerID  *uuid.UUID `gorm:"type:uuid;index" json:"seller_id,omitempty"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index" json:"order_id,omitempty"`
	SKU       string     `json:"sku,omitempty"`
	Size      string     `json:"size,omitempty"`
	Color     string     `json:"color,omitempty"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	Priority  string     `gorm:"default:medium;index" json:"priority"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

// SaveNotificationRequest lets a seller record an alert in their own inbox
// (stock alerts raised by the storefront, mostly).
type SaveNotificationRequest struct {
	Type      string     `json:"type" binding:"required"`
	Message   string     `json:"message"`
	ProductID *uuid.UUID `json:"product_id"`
	OrderID   *uuid.UUID `json:"order_id"`
	SKU       string     `json:"sku"`
	Size      string     `json:"size"`
	Color     string     `json:"color"`
	Priority  string     `json:"priority"`
}

// CreateNotificationRequest is the admin payload; it may target a seller.
type CreateNotificationRequest struct {
	Type      string     `json:"type" binding:"required"`
	Message   string     `json:"message"`
	SellerID  *uuid.UUID `json:"seller_id"`
	ProductID *uuid.UUID `json:"product_id"`
	OrderID   *uuid.UUID `json:"order_id"`
	Priority  string     `json:"priority"`
}

// MarkReadRequest flips the read flag either way.
type MarkReadRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// NotificationFilter narrows a listing. The seller surface accepts the
// storefront's shorthand filters OOS and low_stock, which both map to the
// stock type plus a message match.
type NotificationFilter struct {
	Type         string
	MessageMatch string
	IsRead       *bool
}
