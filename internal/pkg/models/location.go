package models

// Coordinate is a WGS84 position in degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PositionResult is the answer to a one-shot geolocation request.
// Message is set when the platform could not provide a position.
type PositionResult struct {
	RequestID string     `json:"request_id"`
	Position  Coordinate `json:"position"`
	Message   string     `json:"message,omitempty"`
}

// Failed reports whether the geolocation lookup failed
func (r PositionResult) Failed() bool {
	return r.Message != ""
}
