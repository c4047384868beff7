package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
)

const writeWait = 10 * time.Second

// ErrInvalidMessage is returned for frames that are not an event envelope.
// The connection stays usable.
var ErrInvalidMessage = errors.New("invalid message format")

// Client is one connected page. Writes are serialized because gorilla
// connections support a single concurrent writer.
type Client struct {
	ID   string
	conn *websocket.Conn
	wmu  sync.Mutex
}

// NewClient wraps an upgraded connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{ID: uuid.NewString(), conn: conn}
}

// SendMessage sends an event envelope to the page
func (c *Client) SendMessage(event string, data interface{}) error {
	if c == nil || c.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// ReadMessage blocks for the next envelope from the page
func (c *Client) ReadMessage() (*models.WSMessage, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var msg models.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.Event == "" {
		return nil, fmt.Errorf("%w: missing event", ErrInvalidMessage)
	}
	return &msg, nil
}

// SendErrorMessage sends an error message to the page
func (c *Client) SendErrorMessage(code string, message string) error {
	return c.SendMessage(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError logs err and sends the page as much of it as the severity allows
func (c *Client) SendCategorizedError(err error, code string, severity constants.ErrorSeverity) error {
	logger.Warn("WebSocket operation failed",
		logger.SessionID(c.ID),
		logger.String("error_code", code),
		logger.String("severity", severity.String()),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return c.SendErrorMessage(code, err.Error())
	case constants.ErrorSeveritySecurity:
		return c.SendErrorMessage(code, "Access denied")
	default:
		return c.SendErrorMessage(code, "Operation failed")
	}
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// Manager upgrades connections and tracks the connected pages
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs handleClient for the
// lifetime of the connection. Errors from handleClient are logged.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		logger.WarnCtx(c.Request().Context(), "WebSocket upgrade failed", logger.Err(err))
		return nil
	}

	client := NewClient(ws)
	m.AddClient(client)
	defer func() {
		m.RemoveClient(client.ID)
		_ = client.Close()
	}()

	// the connection is hijacked, so errors cannot become HTTP responses
	if err := handleClient(client); err != nil {
		logger.Error("WebSocket session failed",
			logger.SessionID(client.ID),
			logger.Err(err))
	}
	return nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(id string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, id)
}

// Count returns the number of connected pages
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// CloseAll closes every connection, used on shutdown
func (m *Manager) CloseAll() {
	m.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.RUnlock()

	for _, client := range clients {
		_ = client.Close()
	}
}
