package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	require.NotNil(t, cfg)
	assert.Equal(t, "rides-demo", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Rides.TotalSteps)
	assert.Equal(t, 1000, cfg.Rides.TickIntervalMs)
	assert.Equal(t, 2000, cfg.Rides.AssignDelayMinMs)
	assert.Equal(t, 3000, cfg.Rides.AssignDelayMaxMs)
	assert.Equal(t, 1.5, cfg.Rides.DriverDistanceKm)
	assert.Equal(t, 27.7172, cfg.Rides.DefaultLatitude)
	assert.Equal(t, 85.324, cfg.Rides.DefaultLongitude)
	assert.Equal(t, 14, cfg.Rides.DefaultZoom)
	assert.Equal(t, 16, cfg.Rides.UserZoom)
	assert.Equal(t, "© OpenStreetMap", cfg.Rides.TileAttribution)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.NewRelic.Enabled)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("RIDES_TOTAL_STEPS", "10")
	t.Setenv("RIDES_TICK_INTERVAL_MS", "250")
	t.Setenv("RIDES_DRIVER_DISTANCE_KM", "2.5")
	t.Setenv("NEW_RELIC_ENABLED", "true")

	cfg := InitConfig("")

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Rides.TotalSteps)
	assert.Equal(t, 250, cfg.Rides.TickIntervalMs)
	assert.Equal(t, 2.5, cfg.Rides.DriverDistanceKm)
	assert.True(t, cfg.NewRelic.Enabled)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	path := filepath.Join(t.TempDir(), "rides.env")
	require.NoError(t, os.WriteFile(path, []byte("RIDES_USER_ZOOM=17\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("RIDES_USER_ZOOM") })

	cfg := InitConfig(path)

	assert.Equal(t, 17, cfg.Rides.UserZoom)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_INT64", "abc")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_FLOAT", "x.y")

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, int64(8), GetEnvAsInt64("TEST_INT64", 8))
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, 1.25, GetEnvAsFloat("TEST_FLOAT", 1.25))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}

func TestValidateRidesConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.RidesConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *models.RidesConfig) {}},
		{name: "zero steps", mutate: func(c *models.RidesConfig) { c.TotalSteps = 0 }, wantErr: "total steps"},
		{name: "zero tick", mutate: func(c *models.RidesConfig) { c.TickIntervalMs = 0 }, wantErr: "tick interval"},
		{name: "inverted delay", mutate: func(c *models.RidesConfig) { c.AssignDelayMinMs = 3000; c.AssignDelayMaxMs = 2000 }, wantErr: "assignment delay"},
		{name: "negative distance", mutate: func(c *models.RidesConfig) { c.DriverDistanceKm = -1 }, wantErr: "driver distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRidesConfig()
			tt.mutate(&cfg)

			err := ValidateRidesConfig(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
