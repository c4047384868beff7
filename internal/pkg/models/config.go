package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Rides    RidesConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// RidesConfig contains the ride simulation parameters
type RidesConfig struct {
	TotalSteps       int     `json:"total_steps"`
	TickIntervalMs   int     `json:"tick_interval_ms"`
	AssignDelayMinMs int     `json:"assign_delay_min_ms"`
	AssignDelayMaxMs int     `json:"assign_delay_max_ms"`
	DriverDistanceKm float64 `json:"driver_distance_km"`

	// Map defaults used when a page connects
	DefaultLatitude  float64 `json:"default_latitude"`
	DefaultLongitude float64 `json:"default_longitude"`
	DefaultZoom      int     `json:"default_zoom"`
	UserZoom         int     `json:"user_zoom"`
	TileURL          string  `json:"tile_url"`
	TileAttribution  string  `json:"tile_attribution"`
}
