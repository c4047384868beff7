package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	pkgws "github.com/piresc/nebengjek-ride-demo/internal/pkg/websocket"
	"github.com/piresc/nebengjek-ride-demo/services/rides"
	"github.com/piresc/nebengjek-ride-demo/services/rides/gateway"
	"github.com/piresc/nebengjek-ride-demo/services/rides/usecase"
)

const unknownGeolocationError = "Unknown error"

// RideUCFactory creates the ride logic for one connection
type RideUCFactory func(gw rides.RideGW) (rides.RideUC, error)

// RideWebSocketHandler runs one ride demo per connected page
type RideWebSocketHandler struct {
	manager *pkgws.Manager
	newUC   RideUCFactory
}

// NewRideWebSocketHandler creates a handler building each page's ride logic from cfg
func NewRideWebSocketHandler(manager *pkgws.Manager, cfg models.RidesConfig) *RideWebSocketHandler {
	return NewRideWebSocketHandlerWithFactory(manager, func(gw rides.RideGW) (rides.RideUC, error) {
		return usecase.NewRideUC(cfg, gw, nil)
	})
}

// NewRideWebSocketHandlerWithFactory creates a handler with a custom ride logic factory
func NewRideWebSocketHandlerWithFactory(manager *pkgws.Manager, newUC RideUCFactory) *RideWebSocketHandler {
	return &RideWebSocketHandler{
		manager: manager,
		newUC:   newUC,
	}
}

// HandleWebSocket upgrades the request and serves the page until it disconnects
func (h *RideWebSocketHandler) HandleWebSocket(c echo.Context) error {
	logger.InfoCtx(c.Request().Context(), "WebSocket connection requested",
		logger.RequestID(c.Response().Header().Get(echo.HeaderXRequestID)),
		logger.String("remote_ip", c.RealIP()))
	return h.manager.HandleConnection(c, h.serve)
}

func (h *RideWebSocketHandler) serve(client *pkgws.Client) error {
	uc, err := h.newUC(gateway.NewWebSocketGW(client, client.ID))
	if err != nil {
		_ = client.SendCategorizedError(err, constants.ErrorInternalError, constants.ErrorSeverityServer)
		return fmt.Errorf("failed to create ride usecase: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- uc.Run(ctx) }()
	sessionLog := logger.WithSession(client.ID)
	defer func() {
		cancel()
		if err := <-runErr; err != nil {
			sessionLog.Error("Ride loop stopped with error", logger.Err(err))
		}
	}()

	sessionLog.Info("WebSocket client connected")

	for {
		msg, err := client.ReadMessage()
		if err != nil {
			if errors.Is(err, pkgws.ErrInvalidMessage) {
				_ = client.SendCategorizedError(err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
				continue
			}
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				sessionLog.Warn("WebSocket connection closed unexpectedly", logger.Err(err))
			} else {
				sessionLog.Info("WebSocket client disconnected")
			}
			return nil
		}

		if err := h.handleMessage(client, uc, msg); err != nil {
			sessionLog.Error("Error handling message",
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *RideWebSocketHandler) handleMessage(client *pkgws.Client, uc rides.RideUC, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return client.SendMessage(constants.EventPong, struct{}{})
	case constants.EventHello:
		return h.handleHello(client, uc, msg.Data)
	case constants.EventButtonPressed:
		uc.PressButton()
		return nil
	case constants.EventCancelConfirmation:
		return h.handleCancelConfirmation(client, uc, msg.Data)
	case constants.EventPositionResolved:
		return h.handlePositionResolved(client, uc, msg.Data)
	case constants.EventPositionFailed:
		return h.handlePositionFailed(client, uc, msg.Data)
	default:
		return client.SendCategorizedError(fmt.Errorf("unknown event: %s", msg.Event),
			constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}
}

func (h *RideWebSocketHandler) handleHello(client *pkgws.Client, uc rides.RideUC, data json.RawMessage) error {
	var req models.HelloRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return client.SendErrorMessage(constants.ErrorInvalidFormat, "Invalid hello format")
	}
	uc.Hello(req.GeolocationSupported)
	return nil
}

func (h *RideWebSocketHandler) handleCancelConfirmation(client *pkgws.Client, uc rides.RideUC, data json.RawMessage) error {
	var req models.CancelConfirmation
	if err := json.Unmarshal(data, &req); err != nil {
		return client.SendErrorMessage(constants.ErrorInvalidFormat, "Invalid cancel confirmation format")
	}
	uc.ConfirmCancel(req.Confirmed)
	return nil
}

func (h *RideWebSocketHandler) handlePositionResolved(client *pkgws.Client, uc rides.RideUC, data json.RawMessage) error {
	var req models.PositionResolvedRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return client.SendErrorMessage(constants.ErrorInvalidFormat, "Invalid position format")
	}
	if req.RequestID == "" {
		return client.SendErrorMessage(constants.ErrorValidationFailed, "request_id is required")
	}
	if err := validateCoordinate(req.Latitude, req.Longitude); err != nil {
		return client.SendCategorizedError(err, constants.ErrorInvalidLocation, constants.ErrorSeverityClient)
	}

	uc.PositionResolved(models.PositionResult{
		RequestID: req.RequestID,
		Position:  models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
	})
	return nil
}

func (h *RideWebSocketHandler) handlePositionFailed(client *pkgws.Client, uc rides.RideUC, data json.RawMessage) error {
	var req models.PositionFailedRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return client.SendErrorMessage(constants.ErrorInvalidFormat, "Invalid position failure format")
	}
	if req.RequestID == "" {
		return client.SendErrorMessage(constants.ErrorValidationFailed, "request_id is required")
	}
	if req.Message == "" {
		req.Message = unknownGeolocationError
	}

	uc.PositionResolved(models.PositionResult{
		RequestID: req.RequestID,
		Message:   req.Message,
	})
	return nil
}

func validateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range", lng)
	}
	return nil
}
