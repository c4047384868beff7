package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/services/rides/handler/http"
	"github.com/piresc/nebengjek-ride-demo/services/rides/handler/websocket"
)

// Handler coordinates all protocol handlers for the rides service
type Handler struct {
	pageHandler *http.PageHandler
	wsHandler   *websocket.RideWebSocketHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(pageHandler *http.PageHandler, wsHandler *websocket.RideWebSocketHandler) *Handler {
	return &Handler{
		pageHandler: pageHandler,
		wsHandler:   wsHandler,
	}
}

// RegisterRoutes registers the page, its assets and the WebSocket endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.pageHandler.Index)
	e.StaticFS("/static", h.pageHandler.Static())
	e.GET("/ws", h.wsHandler.HandleWebSocket)
}
