package rides

import (
	"context"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// RideUC drives one user's ride demo. All methods except Run only post
// events; Run handles them one at a time until ctx is cancelled.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-ride-demo/services/rides RideUC
type RideUC interface {
	Run(ctx context.Context) error
	Hello(geolocationSupported bool)
	PressButton()
	ConfirmCancel(confirmed bool)
	PositionResolved(result models.PositionResult)
	State() models.RideState
}
