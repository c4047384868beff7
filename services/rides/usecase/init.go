package usecase

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/config"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/services/rides"
)

const eventBuffer = 16

// rideUC implements rides.RideUC for a single page. Fields below the
// mutex are owned by the Run goroutine.
type rideUC struct {
	cfg    models.RidesConfig
	gw     rides.RideGW
	rng    *rand.Rand
	events chan event
	done   chan struct{}

	stateMu sync.RWMutex
	state   models.RideState

	geolocationUnsupported bool
	session                *rideSession
	userMarker             *markerSlot
	driverMarker           *markerSlot

	activeTickers atomic.Int32
}

// NewRideUC creates the ride logic for one page. A nil rng is seeded
// from the clock.
func NewRideUC(cfg models.RidesConfig, gw rides.RideGW, rng *rand.Rand) (rides.RideUC, error) {
	uc, err := newRideUC(cfg, gw, rng)
	if err != nil {
		return nil, err
	}
	return uc, nil
}

func newRideUC(cfg models.RidesConfig, gw rides.RideGW, rng *rand.Rand) (*rideUC, error) {
	if err := config.ValidateRidesConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid rides config: %w", err)
	}
	if gw == nil {
		return nil, fmt.Errorf("ride gateway is required")
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return &rideUC{
		cfg:          cfg,
		gw:           gw,
		rng:          rng,
		events:       make(chan event, eventBuffer),
		done:         make(chan struct{}),
		state:        models.RideStateReady,
		userMarker:   newMarkerSlot(gw, models.MarkerKindUser),
		driverMarker: newMarkerSlot(gw, models.MarkerKindDriver),
	}, nil
}
