package services

import (
	"github.com/google/uuid"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// Caller is the authenticated identity a transition runs as. The state
// machines themselves are caller-agnostic; these predicates wrap them.
type Caller struct {
	ID   uuid.UUID
	Role string
}

// canFulfill reports whether the caller may run fulfillment or return-
// handling transitions on the item: admins always, sellers only on items
// whose seller snapshot matches them.
func canFulfill(caller Caller, item *models.OrderItem) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	return caller.Role == models.RoleSeller && item.SellerID == caller.ID
}

// ownsOrder reports whether the caller is the customer the item's order
// belongs to. Admins pass as well.
func ownsOrder(caller Caller, item *models.OrderItem) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	return item.Order != nil && item.Order.UserID == caller.ID
}
