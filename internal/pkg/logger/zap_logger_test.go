package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rides.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Info("ride requested", String("ride_id", "abc"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, `"message":"ride requested"`)
	assert.Contains(t, line, `"ride_id":"abc"`)
	assert.Contains(t, line, `"service":"`+ServiceName+`"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.log")

	zl, err := NewZapLogger(ZapConfig{Level: "chatty", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Debug("hidden")
	zl.Info("visible")
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestZapEchoMiddleware_LogsRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	zl, err := NewZapLogger(ZapConfig{Level: "info", FilePath: path}, nil)
	require.NoError(t, err)

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.NoError(t, zl.Close())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	logged := strings.TrimSpace(string(data))
	assert.Contains(t, logged, `"message":"Client error"`)
	assert.Contains(t, logged, `"path":"/missing?x=1"`)
	assert.Contains(t, logged, `"status":404`)
}

func TestGlobalLogger_DefaultsAndOverride(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())

	nop := NewNopLogger()
	SetGlobalLogger(nop)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	assert.Same(t, nop, GetGlobalLogger())
	Info("no-op")
	Warn("no-op")
}
