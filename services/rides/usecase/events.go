package usecase

import (
	"context"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

type eventKind int

const (
	eventHello eventKind = iota
	eventButtonPressed
	eventCancelConfirmation
	eventPositionResolved
	eventDriverFound
	eventTick
)

func (k eventKind) String() string {
	switch k {
	case eventHello:
		return "hello"
	case eventButtonPressed:
		return "button_pressed"
	case eventCancelConfirmation:
		return "cancel_confirmation"
	case eventPositionResolved:
		return "position_resolved"
	case eventDriverFound:
		return "driver_found"
	case eventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// event is everything the Run loop reacts to. Timer events carry the id
// of the ride that scheduled them.
type event struct {
	kind      eventKind
	rideID    string
	supported bool
	confirmed bool
	position  models.PositionResult
}

// Hello records whether the page can look up its position
func (uc *rideUC) Hello(geolocationSupported bool) {
	uc.post(event{kind: eventHello, supported: geolocationSupported})
}

// PressButton is the single ride button
func (uc *rideUC) PressButton() {
	uc.post(event{kind: eventButtonPressed})
}

// ConfirmCancel answers the cancel prompt
func (uc *rideUC) ConfirmCancel(confirmed bool) {
	uc.post(event{kind: eventCancelConfirmation, confirmed: confirmed})
}

// PositionResolved delivers the answer to a position request
func (uc *rideUC) PositionResolved(result models.PositionResult) {
	uc.post(event{kind: eventPositionResolved, position: result})
}

// post queues ev for the loop. Events posted after Run returned are dropped.
func (uc *rideUC) post(ev event) {
	select {
	case uc.events <- ev:
	case <-uc.done:
	}
}

// postCtx is post for timer goroutines, which also give up when their
// own context ends
func (uc *rideUC) postCtx(ctx context.Context, ev event) bool {
	select {
	case uc.events <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-uc.done:
		return false
	}
}
