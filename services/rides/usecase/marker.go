package usecase

import (
	"github.com/google/uuid"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/services/rides"
)

// markerSlot owns at most one live marker of a kind
type markerSlot struct {
	gw   rides.RideGW
	kind models.MarkerKind
	id   string
}

func newMarkerSlot(gw rides.RideGW, kind models.MarkerKind) *markerSlot {
	return &markerSlot{gw: gw, kind: kind}
}

// place removes the current marker, if any, before adding the new one
func (m *markerSlot) place(position models.Coordinate, icon models.Icon, popup string, open bool) {
	m.remove()
	marker := models.Marker{
		ID:        string(m.kind) + "-" + uuid.NewString(),
		Kind:      m.kind,
		Position:  position,
		Icon:      icon,
		Popup:     popup,
		PopupOpen: open,
	}
	m.gw.PlaceMarker(marker)
	m.id = marker.ID
}

func (m *markerSlot) move(position models.Coordinate) {
	if m.id == "" {
		return
	}
	m.gw.MoveMarker(m.id, position)
}

func (m *markerSlot) popup(text string, open bool) {
	if m.id == "" {
		return
	}
	m.gw.SetMarkerPopup(m.id, text, open)
}

func (m *markerSlot) remove() {
	if m.id == "" {
		return
	}
	m.gw.RemoveMarker(m.id)
	m.id = ""
}
