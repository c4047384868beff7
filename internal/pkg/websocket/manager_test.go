package websocket

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/constants"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, m *Manager, handle func(*Client) error) *websocket.Conn {
	t.Helper()

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, handle)
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestNewManager(t *testing.T) {
	m := NewManager()

	assert.NotNil(t, m.clients)
	assert.Equal(t, 0, m.Count())
}

func TestManager_AddRemoveClient(t *testing.T) {
	m := NewManager()
	client := &Client{ID: "c1"}

	m.AddClient(client)
	assert.Same(t, client, m.clients["c1"])
	assert.Equal(t, 1, m.Count())

	m.RemoveClient("c1")
	assert.NotContains(t, m.clients, "c1")
	assert.Equal(t, 0, m.Count())
}

func TestClient_SendMessageNilConnection(t *testing.T) {
	var client *Client
	assert.NoError(t, client.SendMessage("status_changed", nil))
	assert.NoError(t, (&Client{}).SendMessage("status_changed", nil))
}

func TestManager_HandleConnection_EchoesAndTracks(t *testing.T) {
	m := NewManager()
	registered := make(chan int, 1)

	conn := newTestServer(t, m, func(c *Client) error {
		registered <- m.Count()
		msg, err := c.ReadMessage()
		if err != nil {
			return err
		}
		return c.SendMessage(msg.Event, map[string]string{"echo": string(msg.Data)})
	})

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: "ping", Data: json.RawMessage(`{}`)}))

	assert.Equal(t, 1, <-registered)
	msg := readEnvelope(t, conn)
	assert.Equal(t, "ping", msg.Event)
	assert.JSONEq(t, `{"echo":"{}"}`, string(msg.Data))

	assert.Eventually(t, func() bool { return m.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_ReadMessageInvalidFrame(t *testing.T) {
	m := NewManager()
	results := make(chan error, 3)

	conn := newTestServer(t, m, func(c *Client) error {
		for i := 0; i < 3; i++ {
			_, err := c.ReadMessage()
			results <- err
		}
		return nil
	})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"data":{}}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"ping"}`)))

	assert.ErrorIs(t, <-results, ErrInvalidMessage)
	assert.ErrorIs(t, <-results, ErrInvalidMessage)
	assert.NoError(t, <-results)
}

func TestClient_SendCategorizedError(t *testing.T) {
	tests := []struct {
		name     string
		severity constants.ErrorSeverity
		want     string
	}{
		{name: "client sees details", severity: constants.ErrorSeverityClient, want: "bad latitude"},
		{name: "server is generic", severity: constants.ErrorSeverityServer, want: "Operation failed"},
		{name: "security is minimal", severity: constants.ErrorSeveritySecurity, want: "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			conn := newTestServer(t, m, func(c *Client) error {
				return c.SendCategorizedError(errors.New("bad latitude"), constants.ErrorInvalidLocation, tt.severity)
			})

			msg := readEnvelope(t, conn)
			var payload models.WSErrorMessage
			require.NoError(t, json.Unmarshal(msg.Data, &payload))

			assert.Equal(t, constants.EventError, msg.Event)
			assert.Equal(t, constants.ErrorInvalidLocation, payload.Code)
			assert.Equal(t, tt.want, payload.Message)
		})
	}
}
