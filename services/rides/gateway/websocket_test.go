package gateway

import (
	"errors"
	"testing"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	event string
	data  interface{}
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

func (s *fakeSender) SendMessage(event string, data interface{}) error {
	s.sent = append(s.sent, sentMessage{event: event, data: data})
	return s.err
}

var _ rides.RideGW = (*WebSocketGW)(nil)

func TestWebSocketGW_Events(t *testing.T) {
	pos := models.Coordinate{Latitude: 27.7172, Longitude: 85.324}
	marker := models.Marker{ID: "user-1", Kind: models.MarkerKindUser, Position: pos}

	tests := []struct {
		name  string
		call  func(gw *WebSocketGW)
		event string
		data  interface{}
	}{
		{
			name:  "tile layer",
			call:  func(gw *WebSocketGW) { gw.AddTileLayer(models.TileLayer{URL: "u", Attribution: "a"}) },
			event: constants.EventTileLayer,
			data:  models.TileLayer{URL: "u", Attribution: "a"},
		},
		{
			name:  "set view",
			call:  func(gw *WebSocketGW) { gw.SetView(models.MapView{Center: pos, Zoom: 16}) },
			event: constants.EventViewChanged,
			data:  models.MapView{Center: pos, Zoom: 16},
		},
		{
			name:  "place marker",
			call:  func(gw *WebSocketGW) { gw.PlaceMarker(marker) },
			event: constants.EventMarkerPlaced,
			data:  marker,
		},
		{
			name:  "move marker",
			call:  func(gw *WebSocketGW) { gw.MoveMarker("driver-1", pos) },
			event: constants.EventMarkerMoved,
			data:  models.MarkerMove{ID: "driver-1", Position: pos},
		},
		{
			name:  "marker popup",
			call:  func(gw *WebSocketGW) { gw.SetMarkerPopup("driver-1", constants.PopupDriverArrived, true) },
			event: constants.EventMarkerPopup,
			data:  models.MarkerPopup{ID: "driver-1", Text: constants.PopupDriverArrived, Open: true},
		},
		{
			name:  "remove marker",
			call:  func(gw *WebSocketGW) { gw.RemoveMarker("driver-1") },
			event: constants.EventMarkerRemoved,
			data:  models.MarkerRemoval{ID: "driver-1"},
		},
		{
			name:  "request position",
			call:  func(gw *WebSocketGW) { gw.RequestPosition("req-1") },
			event: constants.EventPositionRequested,
			data:  models.PositionRequest{RequestID: "req-1"},
		},
		{
			name:  "status",
			call:  func(gw *WebSocketGW) { gw.RenderStatus(models.StatusView{State: models.RideStateReady}) },
			event: constants.EventStatusChanged,
			data:  models.StatusView{State: models.RideStateReady},
		},
		{
			name:  "metrics",
			call:  func(gw *WebSocketGW) { gw.RenderMetrics(models.MetricsView{Distance: "1.0 km", ETA: "4 min"}) },
			event: constants.EventMetricsChanged,
			data:  models.MetricsView{Distance: "1.0 km", ETA: "4 min"},
		},
		{
			name:  "alert",
			call:  func(gw *WebSocketGW) { gw.Alert(constants.AlertGeolocationMissing) },
			event: constants.EventAlert,
			data:  models.AlertMessage{Message: constants.AlertGeolocationMissing},
		},
		{
			name:  "confirm cancel",
			call:  func(gw *WebSocketGW) { gw.ConfirmCancel(constants.PromptCancelRide) },
			event: constants.EventConfirmRequested,
			data:  models.ConfirmPrompt{Prompt: constants.PromptCancelRide},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			gw := NewWebSocketGW(sender, "session-1")

			tt.call(gw)

			require.Len(t, sender.sent, 1)
			assert.Equal(t, tt.event, sender.sent[0].event)
			assert.Equal(t, tt.data, sender.sent[0].data)
		})
	}
}

func TestWebSocketGW_SendErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("broken pipe")}
	gw := NewWebSocketGW(sender, "session-1")

	assert.NotPanics(t, func() {
		gw.Alert("hello")
		gw.RemoveMarker("driver-1")
	})
	assert.Len(t, sender.sent, 2)
}
