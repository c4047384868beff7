package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Page to server
	EventHello              = "hello"
	EventButtonPressed      = "button_pressed"
	EventCancelConfirmation = "cancel_confirmation"
	EventPositionResolved   = "position_resolved"
	EventPositionFailed     = "position_failed"

	// Server to page: map
	EventTileLayer     = "tile_layer"
	EventViewChanged   = "view_changed"
	EventMarkerPlaced  = "marker_placed"
	EventMarkerMoved   = "marker_moved"
	EventMarkerPopup   = "marker_popup"
	EventMarkerRemoved = "marker_removed"

	// Server to page: geolocation and UI surface
	EventPositionRequested = "position_requested"
	EventStatusChanged     = "status_changed"
	EventMetricsChanged    = "metrics_changed"
	EventAlert             = "alert"
	EventConfirmRequested  = "confirm_requested"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
)

// ErrorSeverity decides how much of an error is shown to the client
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)

// String returns the log representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityClient:
		return "client"
	case ErrorSeverityServer:
		return "server"
	case ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}
