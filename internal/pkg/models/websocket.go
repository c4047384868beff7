package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HelloRequest is sent by the page once connected
type HelloRequest struct {
	GeolocationSupported bool `json:"geolocation_supported"`
}

// CancelConfirmation answers a confirm_requested prompt
type CancelConfirmation struct {
	Confirmed bool `json:"confirmed"`
}

// PositionResolvedRequest carries a successful geolocation lookup
type PositionResolvedRequest struct {
	RequestID string  `json:"request_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PositionFailedRequest carries the platform error of a geolocation lookup
type PositionFailedRequest struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// PositionRequest asks the page for the current position
type PositionRequest struct {
	RequestID string `json:"request_id"`
}

// MarkerMove moves an existing marker
type MarkerMove struct {
	ID       string     `json:"id"`
	Position Coordinate `json:"position"`
}

// MarkerPopup replaces the popup content of an existing marker
type MarkerPopup struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Open bool   `json:"open"`
}

// MarkerRemoval removes a marker from the map
type MarkerRemoval struct {
	ID string `json:"id"`
}

// AlertMessage is shown to the user as a blocking notice
type AlertMessage struct {
	Message string `json:"message"`
}

// ConfirmPrompt asks the user a yes/no question
type ConfirmPrompt struct {
	Prompt string `json:"prompt"`
}
