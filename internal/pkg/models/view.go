package models

// StatusView is everything the status card and the ride button display
type StatusView struct {
	State       RideState `json:"state"`
	StatusText  string    `json:"status_text"`
	DetailText  string    `json:"detail_text"`
	StatusIcon  string    `json:"status_icon"`
	ButtonIcon  string    `json:"button_icon"`
	ButtonLabel string    `json:"button_label"`
	ButtonColor string    `json:"button_color"`
	ShowDriver  bool      `json:"show_driver"`
	Arriving    bool      `json:"arriving"`
}

// MetricsView is the driver info panel content
type MetricsView struct {
	Distance   string `json:"distance"`
	ETA        string `json:"eta"`
	DriverCell string `json:"driver_cell,omitempty"`
	// DriverCellCenter is where the driver is shown when only the cell is known
	DriverCellCenter *Coordinate `json:"driver_cell_center,omitempty"`
}

// MarkerKind identifies which overlay a marker is
type MarkerKind string

const (
	MarkerKindUser   MarkerKind = "user"
	MarkerKindDriver MarkerKind = "driver"
)

// Icon describes a marker icon the way the map library expects it
type Icon struct {
	URL         string `json:"url"`
	Size        [2]int `json:"size"`
	Anchor      [2]int `json:"anchor"`
	PopupAnchor [2]int `json:"popup_anchor"`
}

// Marker is a map overlay owned by the server side
type Marker struct {
	ID        string     `json:"id"`
	Kind      MarkerKind `json:"kind"`
	Position  Coordinate `json:"position"`
	Icon      Icon       `json:"icon"`
	Popup     string     `json:"popup,omitempty"`
	PopupOpen bool       `json:"popup_open"`
}

// TileLayer is the base map registration
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// MapView centers the map
type MapView struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}
