package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revanth-raj24/AlmirahShop/lifecycle"
)

// Order groups the items of one checkout for one customer. Status is
// derived from the item statuses (lifecycle.DeriveOrderStatus) except when
// an admin forces it. The shipping fields are a snapshot copied at checkout
// time; later address-book edits never touch past orders.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string    `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalPrice  float64   `gorm:"not null;default:0" json:"total_price"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`

	ShipName       string `json:"ship_name"`
	ShipPhone      string `json:"ship_phone"`
	ShipStreet     string `json:"ship_street"`
	ShipCity       string `json:"ship_city"`
	ShipState      string `json:"ship_state"`
	ShipPostalCode string `json:"ship_postal_code"`
	ShipCountry    string `json:"ship_country"`

	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	OrderItems []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// OrderItem is one product-variant line of an order. Price, variant
// attributes and SellerID are snapshots taken at creation time and survive
// later product or variant edits and deletions. SellerID is immutable after
// creation. The row carries two independent state machines: the fulfillment
// Status and the post-delivery ReturnStatus.
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null" json:"product_id"`
	VariantID *uuid.UUID `gorm:"type:uuid" json:"variant_id,omitempty"`
	SellerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"seller_id"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	Price     float64    `gorm:"not null" json:"price"`

	VariantSize     string `json:"variant_size,omitempty"`
	VariantColor    string `json:"variant_color,omitempty"`
	VariantImageURL string `json:"variant_image_url,omitempty"`

	Status          string  `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	IsReturnEligible  bool       `gorm:"default:true" json:"is_return_eligible"`
	ReturnStatus      string     `gorm:"type:varchar(20);not null;default:'None';index" json:"return_status"`
	ReturnReason      *string    `json:"return_reason,omitempty"`
	ReturnNotes       *string    `json:"return_notes,omitempty"`
	ReturnRequestedAt *time.Time `json:"return_requested_at,omitempty"`
	ReturnProcessedAt *time.Time `json:"return_processed_at,omitempty"`

	Order     *Order    `gorm:"foreignKey:OrderID" json:"-"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewOrderItem builds a Pending item with the snapshot fields filled in.
func NewOrderItem(orderID uuid.UUID, product *Product, variant *Variant, sellerID uuid.UUID, quantity int) OrderItem {
	item := OrderItem{
		OrderID:          orderID,
		ProductID:        product.ID,
		SellerID:         sellerID,
		Quantity:         quantity,
		Price:            product.Price,
		Status:           lifecycle.StatusPending,
		ReturnStatus:     lifecycle.ReturnNone,
		IsReturnEligible: true,
		VariantImageURL:  product.ImageURL,
	}
	if product.DiscountedPrice != nil {
		item.Price = *product.DiscountedPrice
	}
	if variant != nil {
		item.VariantID = &variant.ID
		item.Price = variant.Price
		item.VariantSize = variant.Size
		item.VariantColor = variant.Color
		if variant.ImageURL != "" {
			item.VariantImageURL = variant.ImageURL
		}
	}
	return item
}

// CheckoutRequest is the payload for creating an order from the cart.
type CheckoutRequest struct {
	AddressID uuid.UUID `json:"address_id" binding:"required"`
}

// RejectItemRequest optionally carries the seller's reason.
type RejectItemRequest struct {
	Reason *string `json:"reason"`
}

// OverrideStatusRequest is the admin fulfillment override payload.
type OverrideStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason"`
}

// ReturnRequestPayload is the customer return request payload.
type ReturnRequestPayload struct {
	Reason string  `json:"reason" binding:"required"`
	Notes  *string `json:"notes"`
}

// ReturnDecisionRequest optionally carries seller notes on reject.
type ReturnDecisionRequest struct {
	Notes *string `json:"notes"`
}

// OverrideReturnStatusRequest is the admin return override payload.
type OverrideReturnStatusRequest struct {
	ReturnStatus string  `json:"return_status" binding:"required"`
	Notes        *string `json:"notes"`
}

// OrderEvent is published to Kafka (and best-effort SNS) after a lifecycle
// transition commits.
type OrderEvent struct {
	EventType    string    `json:"event_type"`
	OrderID      string    `json:"order_id"`
	OrderItemID  string    `json:"order_item_id,omitempty"`
	SellerID     string    `json:"seller_id,omitempty"`
	ActorID      string    `json:"actor_id"`
	Status       string    `json:"status,omitempty"`
	ReturnStatus string    `json:"return_status,omitempty"`
	OrderStatus  string    `json:"order_status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
