package usecase

import (
	"sync"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

// recordingGW keeps every call the ride logic makes
type recordingGW struct {
	mu sync.Mutex

	tiles     []models.TileLayer
	views     []models.MapView
	placed    []models.Marker
	moved     []models.MarkerMove
	popups    []models.MarkerPopup
	removed   []string
	requests  []string
	statuses  []models.StatusView
	metrics   []models.MetricsView
	alerts    []string
	prompts   []string
	liveMarks map[string]models.Marker

	onRequestPosition func(requestID string)
}

func newRecordingGW() *recordingGW {
	return &recordingGW{liveMarks: make(map[string]models.Marker)}
}

func (g *recordingGW) AddTileLayer(layer models.TileLayer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tiles = append(g.tiles, layer)
}

func (g *recordingGW) SetView(view models.MapView) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.views = append(g.views, view)
}

func (g *recordingGW) PlaceMarker(marker models.Marker) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.placed = append(g.placed, marker)
	g.liveMarks[marker.ID] = marker
}

func (g *recordingGW) MoveMarker(id string, position models.Coordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moved = append(g.moved, models.MarkerMove{ID: id, Position: position})
}

func (g *recordingGW) SetMarkerPopup(id string, text string, open bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.popups = append(g.popups, models.MarkerPopup{ID: id, Text: text, Open: open})
}

func (g *recordingGW) RemoveMarker(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removed = append(g.removed, id)
	delete(g.liveMarks, id)
}

func (g *recordingGW) RequestPosition(requestID string) {
	g.mu.Lock()
	g.requests = append(g.requests, requestID)
	hook := g.onRequestPosition
	g.mu.Unlock()
	if hook != nil {
		hook(requestID)
	}
}

func (g *recordingGW) RenderStatus(view models.StatusView) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses = append(g.statuses, view)
}

func (g *recordingGW) RenderMetrics(view models.MetricsView) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.metrics = append(g.metrics, view)
}

func (g *recordingGW) Alert(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.alerts = append(g.alerts, message)
}

func (g *recordingGW) ConfirmCancel(prompt string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
}

func (g *recordingGW) liveMarkers(kind models.MarkerKind) []models.Marker {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []models.Marker
	for _, m := range g.liveMarks {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func (g *recordingGW) lastStatus() models.StatusView {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.statuses) == 0 {
		return models.StatusView{}
	}
	return g.statuses[len(g.statuses)-1]
}

func (g *recordingGW) moveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.moved)
}
