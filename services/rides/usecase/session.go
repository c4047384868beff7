package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// rideSession owns everything that lives from a ride request until
// arrival, cancellation or a failed geolocation lookup
type rideSession struct {
	id   string
	user models.Coordinate

	// pending geolocation request, cleared once answered
	locateID string
	// a cancel prompt was sent and not yet answered
	confirmPending bool

	assignTimer *time.Timer
	stopTicks   context.CancelFunc
	sim         *Simulation

	disposed bool
}

func newRideSession() *rideSession {
	return &rideSession{
		id:       uuid.NewString(),
		locateID: uuid.NewString(),
	}
}

func (s *rideSession) stopSimulation() {
	if s.stopTicks != nil {
		s.stopTicks()
		s.stopTicks = nil
	}
}

// dispose stops every timer of the session. Safe to call more than once.
func (s *rideSession) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.locateID = ""
	s.confirmPending = false
	if s.assignTimer != nil {
		s.assignTimer.Stop()
		s.assignTimer = nil
	}
	s.stopSimulation()
}
