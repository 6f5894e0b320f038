package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOrderStatus(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"all delivered", []string{StatusDelivered, StatusDelivered}, OrderCompleted},
		{"all rejected", []string{StatusRejected, StatusRejected}, OrderCancelled},
		{"mixed pending and delivered", []string{StatusPending, StatusDelivered}, OrderActive},
		{"single pending", []string{StatusPending}, OrderActive},
		{"single delivered", []string{StatusDelivered}, OrderCompleted},
		{"single rejected", []string{StatusRejected}, OrderCancelled},
		{"partial rejection", []string{StatusRejected, StatusAccepted}, OrderActive},
		{"shipped and delivered", []string{StatusShipped, StatusDelivered}, OrderActive},
		{"no items", nil, OrderActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveOrderStatus(tc.statuses))
		})
	}
}

// Order independence: the fold must not depend on item ordering.
func TestDeriveOrderStatus_OrderIndependent(t *testing.T) {
	a := DeriveOrderStatus([]string{StatusDelivered, StatusRejected, StatusPending})
	b := DeriveOrderStatus([]string{StatusPending, StatusDelivered, StatusRejected})
	assert.Equal(t, a, b)
	assert.Equal(t, OrderActive, a)
}
