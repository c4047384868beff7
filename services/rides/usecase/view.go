package usecase

import (
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/internal/utils"
)

var statusViews = map[models.RideState]models.StatusView{
	models.RideStateReady: {
		State:       models.RideStateReady,
		StatusText:  "Ready to ride",
		DetailText:  "Click below to request a ride",
		StatusIcon:  "🚗",
		ButtonIcon:  "🚖",
		ButtonLabel: "Request Ride",
		ButtonColor: "var(--primary-color)",
	},
	models.RideStateSearching: {
		State:       models.RideStateSearching,
		StatusText:  "Finding a driver",
		DetailText:  "Searching nearby drivers...",
		StatusIcon:  "🔍",
		ButtonIcon:  "⏳",
		ButtonLabel: "Searching...",
		ButtonColor: "var(--light-text)",
	},
	models.RideStateDriverAssigned: {
		State:       models.RideStateDriverAssigned,
		StatusText:  "Driver coming",
		DetailText:  "Your driver is on the way",
		StatusIcon:  "🚕",
		ButtonIcon:  "🛑",
		ButtonLabel: "Cancel Ride",
		ButtonColor: "var(--accent-color)",
		ShowDriver:  true,
		Arriving:    true,
	},
	models.RideStateArrived: {
		State:       models.RideStateArrived,
		StatusText:  "Driver arrived!",
		DetailText:  "Your ride is here",
		StatusIcon:  "🎉",
		ButtonIcon:  "⭐",
		ButtonLabel: "Rate Driver",
		ButtonColor: "var(--secondary-color)",
		ShowDriver:  true,
		Arriving:    true,
	},
}

// RenderStatus returns what the status card shows in state.
// Unknown states render as ready.
func RenderStatus(state models.RideState) models.StatusView {
	if view, ok := statusViews[state]; ok {
		return view
	}
	return statusViews[models.RideStateReady]
}

// RenderMetrics builds the driver info panel for one simulation step
func RenderMetrics(step SimulationStep) models.MetricsView {
	cell := utils.EncodeLocation(step.Position, constants.DriverCellPrecision)
	center := utils.DecodeGeohash(cell)
	return models.MetricsView{
		Distance:         FormatDistance(step.DistanceKm),
		ETA:              FormatETA(step.ETAMinutes),
		DriverCell:       cell,
		DriverCellCenter: &center,
	}
}

var (
	userIcon = models.Icon{
		URL:         constants.UserIconURL,
		Size:        [2]int{32, 32},
		Anchor:      [2]int{16, 32},
		PopupAnchor: [2]int{0, -32},
	}
	driverIcon = models.Icon{
		URL:         constants.DriverIconURL,
		Size:        [2]int{40, 40},
		Anchor:      [2]int{20, 20},
		PopupAnchor: [2]int{0, -20},
	}
)
