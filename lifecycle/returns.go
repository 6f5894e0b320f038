package lifecycle

// Return status values for an order item. The return machine only becomes
// reachable once the fulfillment status is Delivered.
const (
	ReturnNone      = "None"
	ReturnRequested = "ReturnRequested"
	ReturnAccepted  = "ReturnAccepted"
	ReturnRejected  = "ReturnRejected"
	ReturnInTransit = "ReturnInTransit"
	ReturnReceived  = "ReturnReceived"
	RefundProcessed = "RefundProcessed"
)

var returnOverrideTargets = map[string]bool{
	ReturnNone:      true,
	ReturnRequested: true,
	ReturnAccepted:  true,
	ReturnRejected:  true,
	ReturnInTransit: true,
	ReturnReceived:  true,
	RefundProcessed: true,
}

// CanRequestReturn gates the customer return request. The item must be
// delivered, return-eligible, and must not already have an open return.
func CanRequestReturn(status, returnStatus string, eligible bool) error {
	if status != StatusDelivered {
		return &TransitionError{Op: "request a return for", Current: status}
	}
	if !eligible {
		return &TransitionError{Op: "request a return for a non-returnable", Current: status}
	}
	if returnStatus != ReturnNone {
		return &TransitionError{Op: "request a return for", Current: returnStatus}
	}
	return nil
}

// CanCancelReturn gates the customer cancelling their own request.
func CanCancelReturn(returnStatus string) error {
	if returnStatus != ReturnRequested {
		return &TransitionError{Op: "cancel a return in", Current: returnStatus}
	}
	return nil
}

// CanAcceptReturn gates the seller/admin accepting a requested return.
func CanAcceptReturn(returnStatus string) error {
	if returnStatus != ReturnRequested {
		return &TransitionError{Op: "accept a return in", Current: returnStatus}
	}
	return nil
}

// CanRejectReturn gates the seller/admin rejecting a requested return.
func CanRejectReturn(returnStatus string) error {
	if returnStatus != ReturnRequested {
		return &TransitionError{Op: "reject a return in", Current: returnStatus}
	}
	return nil
}

// CanMarkReturnReceived gates marking the returned goods as received.
func CanMarkReturnReceived(returnStatus string) error {
	if returnStatus != ReturnAccepted && returnStatus != ReturnInTransit {
		return &TransitionError{Op: "mark received a return in", Current: returnStatus}
	}
	return nil
}

// ValidReturnOverrideTarget reports whether status is a permitted target for
// the admin return override. RefundProcessed is only reachable this way.
func ValidReturnOverrideTarget(status string) bool {
	return returnOverrideTargets[status]
}
