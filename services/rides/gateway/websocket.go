package gateway

import (
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// MessageSender writes one event envelope to the page
type MessageSender interface {
	SendMessage(event string, data interface{}) error
}

// WebSocketGW renders the ride on a page connected over WebSocket
type WebSocketGW struct {
	sender    MessageSender
	sessionID string
}

// NewWebSocketGW creates a gateway writing to sender
func NewWebSocketGW(sender MessageSender, sessionID string) *WebSocketGW {
	return &WebSocketGW{
		sender:    sender,
		sessionID: sessionID,
	}
}

// send logs write failures; a dead connection is noticed by the read loop
func (g *WebSocketGW) send(event string, data interface{}) {
	if err := g.sender.SendMessage(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.SessionID(g.sessionID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func (g *WebSocketGW) AddTileLayer(layer models.TileLayer) {
	g.send(constants.EventTileLayer, layer)
}

func (g *WebSocketGW) SetView(view models.MapView) {
	g.send(constants.EventViewChanged, view)
}

func (g *WebSocketGW) PlaceMarker(marker models.Marker) {
	g.send(constants.EventMarkerPlaced, marker)
}

func (g *WebSocketGW) MoveMarker(id string, position models.Coordinate) {
	g.send(constants.EventMarkerMoved, models.MarkerMove{ID: id, Position: position})
}

func (g *WebSocketGW) SetMarkerPopup(id string, text string, open bool) {
	g.send(constants.EventMarkerPopup, models.MarkerPopup{ID: id, Text: text, Open: open})
}

func (g *WebSocketGW) RemoveMarker(id string) {
	g.send(constants.EventMarkerRemoved, models.MarkerRemoval{ID: id})
}

// RequestPosition asks the page for one geolocation lookup
func (g *WebSocketGW) RequestPosition(requestID string) {
	g.send(constants.EventPositionRequested, models.PositionRequest{RequestID: requestID})
}

func (g *WebSocketGW) RenderStatus(view models.StatusView) {
	g.send(constants.EventStatusChanged, view)
}

func (g *WebSocketGW) RenderMetrics(view models.MetricsView) {
	g.send(constants.EventMetricsChanged, view)
}

func (g *WebSocketGW) Alert(message string) {
	g.send(constants.EventAlert, models.AlertMessage{Message: message})
}

// ConfirmCancel shows a yes/no prompt; the page answers with cancel_confirmation
func (g *WebSocketGW) ConfirmCancel(prompt string) {
	g.send(constants.EventConfirmRequested, models.ConfirmPrompt{Prompt: prompt})
}
