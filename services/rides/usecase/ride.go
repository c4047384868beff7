package usecase

import (
	"context"
	"math"
	"time"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/internal/utils"
)

// Run draws the initial map and handles events until ctx is done.
// It must be called once. Any live ride is disposed on return.
func (uc *rideUC) Run(ctx context.Context) error {
	defer close(uc.done)
	defer uc.dispose()

	uc.gw.AddTileLayer(models.TileLayer{
		URL:         uc.cfg.TileURL,
		Attribution: uc.cfg.TileAttribution,
	})
	uc.gw.SetView(models.MapView{
		Center: models.Coordinate{Latitude: uc.cfg.DefaultLatitude, Longitude: uc.cfg.DefaultLongitude},
		Zoom:   uc.cfg.DefaultZoom,
	})
	uc.gw.RenderStatus(RenderStatus(uc.State()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-uc.events:
			uc.handle(ev)
		}
	}
}

// State returns the current ride state
func (uc *rideUC) State() models.RideState {
	uc.stateMu.RLock()
	defer uc.stateMu.RUnlock()
	return uc.state
}

func (uc *rideUC) handle(ev event) {
	switch ev.kind {
	case eventHello:
		uc.handleHello(ev.supported)
	case eventButtonPressed:
		uc.handleButtonPressed()
	case eventCancelConfirmation:
		uc.handleCancelConfirmation(ev.confirmed)
	case eventPositionResolved:
		uc.handlePositionResolved(ev.position)
	case eventDriverFound:
		uc.handleDriverFound(ev.rideID)
	case eventTick:
		uc.handleTick(ev.rideID)
	default:
		logger.Warn("Unknown ride event", logger.String("event", ev.kind.String()))
	}
}

func (uc *rideUC) handleHello(supported bool) {
	if !supported {
		uc.geolocationUnsupported = true
	}
}

func (uc *rideUC) handleButtonPressed() {
	if uc.State().InProgress() {
		if uc.session != nil {
			uc.session.confirmPending = true
		}
		uc.gw.ConfirmCancel(constants.PromptCancelRide)
		return
	}
	uc.requestRide()
}

func (uc *rideUC) handleCancelConfirmation(confirmed bool) {
	s := uc.session
	if s == nil || !s.confirmPending {
		return
	}
	s.confirmPending = false
	if !confirmed || !uc.State().InProgress() {
		return
	}
	uc.cancelRide()
}

// requestRide starts a ride from ready or arrived
func (uc *rideUC) requestRide() {
	if uc.geolocationUnsupported {
		uc.gw.Alert(constants.AlertGeolocationMissing)
		return
	}

	uc.dispose()
	s := newRideSession()
	if !uc.transition(models.RideStateSearching) {
		return
	}
	uc.session = s

	logger.Info("Ride requested", logger.RideID(s.id))
	uc.gw.RequestPosition(s.locateID)
}

func (uc *rideUC) handlePositionResolved(result models.PositionResult) {
	s := uc.session
	if s == nil || s.locateID == "" || result.RequestID != s.locateID {
		logger.Debug("Dropping stale position answer", logger.String("request_id", result.RequestID))
		return
	}
	s.locateID = ""

	if result.Failed() {
		logger.Warn("Geolocation failed",
			logger.RideID(s.id),
			logger.String("message", result.Message))
		uc.dispose()
		uc.transition(models.RideStateReady)
		uc.gw.Alert(constants.AlertGeolocationErrPrefix + result.Message)
		return
	}

	s.user = result.Position
	uc.userMarker.place(s.user, userIcon, constants.PopupUserLocation, true)
	uc.gw.SetView(models.MapView{Center: s.user, Zoom: uc.cfg.UserZoom})

	delay := uc.assignDelay()
	rideID := s.id
	s.assignTimer = time.AfterFunc(delay, func() {
		uc.post(event{kind: eventDriverFound, rideID: rideID})
	})

	logger.Info("User located",
		logger.RideID(s.id),
		logger.Cell("user_cell", utils.EncodeLocation(s.user, constants.UserCellPrecision)),
		logger.Duration("assign_delay", delay))
}

// assignDelay is uniform in [min, max)
func (uc *rideUC) assignDelay() time.Duration {
	minMs := float64(uc.cfg.AssignDelayMinMs)
	maxMs := float64(uc.cfg.AssignDelayMaxMs)
	ms := minMs + uc.rng.Float64()*(maxMs-minMs)
	return time.Duration(ms * float64(time.Millisecond))
}

func (uc *rideUC) handleDriverFound(rideID string) {
	s := uc.session
	if s == nil || s.id != rideID || uc.State() != models.RideStateSearching {
		return
	}
	s.assignTimer = nil

	bearing := uc.rng.Float64() * 2 * math.Pi
	start := utils.DestinationPoint(s.user, bearing, uc.cfg.DriverDistanceKm)
	if !uc.transition(models.RideStateDriverAssigned) {
		return
	}

	logger.Info("Driver assigned",
		logger.RideID(s.id),
		logger.Float64("bearing_deg", utils.InitialBearing(s.user, start)*180/math.Pi),
		logger.Float64("distance_km", utils.CalculateDistance(start, s.user)))

	uc.startSimulation(s, start)
}

func (uc *rideUC) startSimulation(s *rideSession, start models.Coordinate) {
	s.stopSimulation()
	s.sim = NewSimulation(start, s.user, uc.cfg.TotalSteps)
	uc.driverMarker.place(start, driverIcon, constants.PopupDriverComing, false)

	ctx, cancel := context.WithCancel(context.Background())
	s.stopTicks = cancel
	interval := models.Milliseconds(uc.cfg.TickIntervalMs)
	rideID := s.id

	uc.activeTickers.Add(1)
	go func() {
		defer uc.activeTickers.Add(-1)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !uc.postCtx(ctx, event{kind: eventTick, rideID: rideID}) {
					return
				}
			}
		}
	}()
}

func (uc *rideUC) handleTick(rideID string) {
	s := uc.session
	if s == nil || s.id != rideID || s.sim == nil || uc.State() != models.RideStateDriverAssigned {
		return
	}

	step := s.sim.Advance()
	uc.driverMarker.move(step.Position)
	uc.gw.RenderMetrics(RenderMetrics(step))

	if step.Done {
		uc.arrive()
	}
}

// arrive ends the ride; the driver marker stays on the map
func (uc *rideUC) arrive() {
	rideID := uc.session.id
	uc.dispose()
	uc.transition(models.RideStateArrived)
	uc.driverMarker.popup(constants.PopupDriverArrived, true)
	logger.Info("Driver arrived", logger.RideID(rideID))
}

func (uc *rideUC) cancelRide() {
	rideID := uc.session.id
	uc.dispose()
	uc.driverMarker.remove()
	uc.transition(models.RideStateReady)
	logger.Info("Ride cancelled", logger.RideID(rideID))
}

// transition moves the machine to target and renders the status card
func (uc *rideUC) transition(target models.RideState) bool {
	uc.stateMu.Lock()
	current := uc.state
	if !current.CanTransitionTo(target) {
		uc.stateMu.Unlock()
		logger.Warn("Invalid ride state transition",
			logger.RideState("from", current),
			logger.RideState("to", target))
		return false
	}
	uc.state = target
	uc.stateMu.Unlock()

	uc.gw.RenderStatus(RenderStatus(target))
	return true
}

// dispose ends the live ride session, if any
func (uc *rideUC) dispose() {
	if uc.session == nil {
		return
	}
	uc.session.dispose()
	uc.session = nil
}
