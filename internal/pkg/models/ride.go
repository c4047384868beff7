package models

// RideState represents the lifecycle state of a ride
type RideState string

const (
	RideStateReady          RideState = "ready"
	RideStateSearching      RideState = "searching"
	RideStateDriverAssigned RideState = "driver-assigned"
	RideStateArrived        RideState = "arrived"
)

// rideTransitions defines the ride state machine.
// arrived re-enters the flow only through a new user request.
var rideTransitions = map[RideState][]RideState{
	RideStateReady:          {RideStateSearching},
	RideStateSearching:      {RideStateDriverAssigned, RideStateReady},
	RideStateDriverAssigned: {RideStateArrived, RideStateReady},
	RideStateArrived:        {RideStateSearching},
}

// CanTransitionTo returns true if moving from s to target is allowed
func (s RideState) CanTransitionTo(target RideState) bool {
	for _, t := range rideTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// InProgress returns true while a ride can still be cancelled
func (s RideState) InProgress() bool {
	return s == RideStateSearching || s == RideStateDriverAssigned
}

// String returns the string representation of the state
func (s RideState) String() string {
	return string(s)
}
