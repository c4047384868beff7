package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "rides-demo")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Rides config
	configs.Rides = DefaultRidesConfig()
	configs.Rides.TotalSteps = GetEnvAsInt("RIDES_TOTAL_STEPS", configs.Rides.TotalSteps)
	configs.Rides.TickIntervalMs = GetEnvAsInt("RIDES_TICK_INTERVAL_MS", configs.Rides.TickIntervalMs)
	configs.Rides.AssignDelayMinMs = GetEnvAsInt("RIDES_ASSIGN_DELAY_MIN_MS", configs.Rides.AssignDelayMinMs)
	configs.Rides.AssignDelayMaxMs = GetEnvAsInt("RIDES_ASSIGN_DELAY_MAX_MS", configs.Rides.AssignDelayMaxMs)
	configs.Rides.DriverDistanceKm = GetEnvAsFloat("RIDES_DRIVER_DISTANCE_KM", configs.Rides.DriverDistanceKm)
	configs.Rides.DefaultLatitude = GetEnvAsFloat("RIDES_DEFAULT_LAT", configs.Rides.DefaultLatitude)
	configs.Rides.DefaultLongitude = GetEnvAsFloat("RIDES_DEFAULT_LNG", configs.Rides.DefaultLongitude)
	configs.Rides.DefaultZoom = GetEnvAsInt("RIDES_DEFAULT_ZOOM", configs.Rides.DefaultZoom)
	configs.Rides.UserZoom = GetEnvAsInt("RIDES_USER_ZOOM", configs.Rides.UserZoom)
	configs.Rides.TileURL = GetEnv("RIDES_TILE_URL", configs.Rides.TileURL)
	configs.Rides.TileAttribution = GetEnv("RIDES_TILE_ATTRIBUTION", configs.Rides.TileAttribution)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "file")

	return configs
}

// DefaultRidesConfig returns the simulation defaults: 20 steps of 1s,
// a 2-3s driver search and a driver spawned 1.5km away, around Kathmandu.
func DefaultRidesConfig() models.RidesConfig {
	return models.RidesConfig{
		TotalSteps:       20,
		TickIntervalMs:   1000,
		AssignDelayMinMs: 2000,
		AssignDelayMaxMs: 3000,
		DriverDistanceKm: 1.5,
		DefaultLatitude:  27.7172,
		DefaultLongitude: 85.324,
		DefaultZoom:      14,
		UserZoom:         16,
		TileURL:          "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		TileAttribution:  "© OpenStreetMap",
	}
}

// ValidateRidesConfig rejects simulation settings the ride loop cannot run with
func ValidateRidesConfig(cfg models.RidesConfig) error {
	if cfg.TotalSteps <= 0 {
		return fmt.Errorf("total steps must be positive, got %d", cfg.TotalSteps)
	}
	if cfg.TickIntervalMs <= 0 {
		return fmt.Errorf("tick interval must be positive, got %dms", cfg.TickIntervalMs)
	}
	if cfg.AssignDelayMinMs < 0 || cfg.AssignDelayMaxMs < cfg.AssignDelayMinMs {
		return fmt.Errorf("invalid driver assignment delay range [%d, %d)ms", cfg.AssignDelayMinMs, cfg.AssignDelayMaxMs)
	}
	if cfg.DriverDistanceKm < 0 {
		return fmt.Errorf("driver distance must not be negative, got %v", cfg.DriverDistanceKm)
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
