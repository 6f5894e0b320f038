package lifecycle

import "fmt"

// Fulfillment status values for an order item.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// TransitionError reports an operation attempted from an illegal current state.
type TransitionError struct {
	Op      string
	Current string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an item in status %q", e.Op, e.Current)
}

var acceptableFrom = map[string]bool{
	StatusPending:  true,
	StatusRejected: true,
}

var rejectableFrom = map[string]bool{
	StatusPending:  true,
	StatusAccepted: true,
}

var overrideTargets = map[string]bool{
	StatusAccepted:  true,
	StatusRejected:  true,
	StatusCancelled: true,
	StatusShipped:   true,
	StatusDelivered: true,
}

// CanAccept reports whether a seller accept is legal from the current status.
// Re-accepting a rejected item is allowed and clears the rejection reason.
func CanAccept(current string) error {
	if !acceptableFrom[current] {
		return &TransitionError{Op: "accept", Current: current}
	}
	return nil
}

// CanReject reports whether a seller reject is legal from the current status.
func CanReject(current string) error {
	if !rejectableFrom[current] {
		return &TransitionError{Op: "reject", Current: current}
	}
	return nil
}

// ValidOverrideTarget reports whether status is a permitted target for the
// admin override. The override itself is unconditional on the current state.
func ValidOverrideTarget(status string) bool {
	return overrideTargets[status]
}
