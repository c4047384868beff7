package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRideState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RideState
		to   RideState
		want bool
	}{
		{RideStateReady, RideStateSearching, true},
		{RideStateReady, RideStateDriverAssigned, false},
		{RideStateSearching, RideStateDriverAssigned, true},
		{RideStateSearching, RideStateReady, true},
		{RideStateSearching, RideStateArrived, false},
		{RideStateDriverAssigned, RideStateArrived, true},
		{RideStateDriverAssigned, RideStateReady, true},
		{RideStateDriverAssigned, RideStateSearching, false},
		{RideStateArrived, RideStateSearching, true},
		{RideStateArrived, RideStateReady, false},
		{"unknown", RideStateSearching, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRideState_InProgress(t *testing.T) {
	assert.False(t, RideStateReady.InProgress())
	assert.True(t, RideStateSearching.InProgress())
	assert.True(t, RideStateDriverAssigned.InProgress())
	assert.False(t, RideStateArrived.InProgress())
}

func TestPositionResult_Failed(t *testing.T) {
	assert.False(t, PositionResult{RequestID: "r", Position: Coordinate{Latitude: 1}}.Failed())
	assert.True(t, PositionResult{RequestID: "r", Message: "denied"}.Failed())
}
