package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"new to pickup pending", StatusNew, StatusPickupPending, true},
		{"in-progress to delivery pending", StatusInProgress, StatusDeliveryPending, true},
		{"delivery pending to delivered", StatusDeliveryPending, StatusDelivered, true},
		{"any open state may cancel", StatusNew, StatusCancelled, true},
		{"backwards moves are allowed", StatusDeliveryPending, StatusInProgress, true},
		{"same state is a no-op", StatusInProgress, StatusInProgress, true},
		{"same terminal state is a no-op", StatusDelivered, StatusDelivered, true},
		{"delivered is closed", StatusDelivered, StatusInProgress, false},
		{"cancelled is closed", StatusCancelled, StatusNew, false},
		{"cancelled cannot become delivered", StatusCancelled, StatusDelivered, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
