package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHandler_Index(t *testing.T) {
	h, err := NewPageHandler(web.Assets)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Index(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), `id="request-btn"`)
	assert.Contains(t, rec.Body.String(), "/static/app.js")
}

func TestPageHandler_Static(t *testing.T) {
	h, err := NewPageHandler(web.Assets)
	require.NoError(t, err)

	e := echo.New()
	e.StaticFS("/static", h.Static())

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "position_requested")
}

func TestNewPageHandler_MissingIndex(t *testing.T) {
	_, err := NewPageHandler(fstest.MapFS{
		"static/app.js": &fstest.MapFile{Data: []byte("")},
	})

	assert.ErrorContains(t, err, "failed to read index page")
}
