package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccept(t *testing.T) {
	legal := []string{StatusPending, StatusRejected}
	illegal := []string{StatusAccepted, StatusShipped, StatusDelivered, StatusCancelled}

	for _, s := range legal {
		assert.NoError(t, CanAccept(s), "accept from %s should be legal", s)
	}
	for _, s := range illegal {
		err := CanAccept(s)
		assert.Error(t, err, "accept from %s should be illegal", s)
		var te *TransitionError
		if assert.ErrorAs(t, err, &te) {
			assert.Equal(t, s, te.Current)
			assert.Contains(t, err.Error(), s)
		}
	}
}

func TestCanReject(t *testing.T) {
	legal := []string{StatusPending, StatusAccepted}
	illegal := []string{StatusRejected, StatusShipped, StatusDelivered, StatusCancelled}

	for _, s := range legal {
		assert.NoError(t, CanReject(s), "reject from %s should be legal", s)
	}
	for _, s := range illegal {
		err := CanReject(s)
		assert.Error(t, err, "reject from %s should be illegal", s)
		var te *TransitionError
		if assert.ErrorAs(t, err, &te) {
			assert.Equal(t, s, te.Current)
		}
	}
}

func TestValidOverrideTarget(t *testing.T) {
	for _, s := range []string{StatusAccepted, StatusRejected, StatusCancelled, StatusShipped, StatusDelivered} {
		assert.True(t, ValidOverrideTarget(s))
	}
	// Pending is the initial state, never an override target.
	assert.False(t, ValidOverrideTarget(StatusPending))
	assert.False(t, ValidOverrideTarget("Refunded"))
	assert.False(t, ValidOverrideTarget(""))
}
