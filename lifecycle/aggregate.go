package lifecycle

// Order-level aggregate status values, derived from the item statuses.
const (
	OrderActive    = "Active"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

// ValidOrderStatus reports whether s is a recognized aggregate status.
// Admin force-sets are checked against this.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderActive, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// DeriveOrderStatus folds the item statuses into the order status.
// Completed when every item is Delivered, Cancelled when every item is
// Rejected, Active for any mix. The fold is recomputed in full on every
// item mutation rather than maintained incrementally.
func DeriveOrderStatus(itemStatuses []string) string {
	if len(itemStatuses) == 0 {
		return OrderActive
	}
	allDelivered := true
	allRejected := true
	for _, s := range itemStatuses {
		if s != StatusDelivered {
			allDelivered = false
		}
		if s != StatusRejected {
			allRejected = false
		}
	}
	switch {
	case allDelivered:
		return OrderCompleted
	case allRejected:
		return OrderCancelled
	default:
		return OrderActive
	}
}
