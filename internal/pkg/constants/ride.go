package constants

// Popup and alert texts
const (
	PopupUserLocation  = "Your location"
	PopupDriverComing  = "Your driver is coming"
	PopupDriverArrived = "Driver has arrived!"

	PromptCancelRide          = "Are you sure you want to cancel your ride?"
	AlertGeolocationMissing   = "Geolocation is not supported by your browser."
	AlertGeolocationErrPrefix = "Error: "
)

// Marker icons
const (
	DriverIconURL = "/static/car.svg"
	UserIconURL   = "https://cdn0.iconfinder.com/data/icons/small-n-flat/24/678111-map-marker-512.png"
)

// Geohash precisions
const (
	UserCellPrecision   uint = 6
	DriverCellPrecision uint = 7
)
