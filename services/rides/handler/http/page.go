package http

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the ride page and its static assets
type PageHandler struct {
	index  []byte
	static fs.FS
}

// NewPageHandler reads index.html and the static directory from assets
func NewPageHandler(assets fs.FS) (*PageHandler, error) {
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read index page: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &PageHandler{
		index:  index,
		static: static,
	}, nil
}

// Index returns the ride page
func (h *PageHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.index)
}

// Static is the file system mounted under /static
func (h *PageHandler) Static() fs.FS {
	return h.static
}
