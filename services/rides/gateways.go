package rides

import (
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// RideGW is everything the ride logic shows to or asks of the page:
// the map, the one-shot geolocation lookup and the status panel.
// Calls never fail from the caller's point of view.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-ride-demo/services/rides RideGW
type RideGW interface {
	// Map
	AddTileLayer(layer models.TileLayer)
	SetView(view models.MapView)
	PlaceMarker(marker models.Marker)
	MoveMarker(id string, position models.Coordinate)
	SetMarkerPopup(id string, text string, open bool)
	RemoveMarker(id string)

	// Geolocation
	RequestPosition(requestID string)

	// UI surface
	RenderStatus(view models.StatusView)
	RenderMetrics(view models.MetricsView)
	Alert(message string)
	ConfirmCancel(prompt string)
}
