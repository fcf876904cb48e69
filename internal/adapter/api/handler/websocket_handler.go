package handler

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "dropfit/internal/infrastructure/websocket"
	"dropfit/pkg/errors"
)

type WebSocketHandler struct {
	wsManager  *ws.Manager
	authClient *auth.Client
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restricted by the reverse proxy in production
	},
}

var websocketHandler *WebSocketHandler

func NewWebSocketHandler(wsManager *ws.Manager, authClient *auth.Client) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:  wsManager,
		authClient: authClient,
	}
}

func SetupWebSocketHandler(wsManager *ws.Manager, authClient *auth.Client) {
	websocketHandler = NewWebSocketHandler(wsManager, authClient)
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}

// HandleWebSocket upgrades the connection after verifying the token passed as
// a query parameter, since browsers cannot set headers on WebSocket requests.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	idToken := c.QueryParam("token")
	if idToken == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), idToken)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: token.UID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
