package relay

import (
	"net/http"
	"time"

	"eduportal_backend/pkg/logger"
	"eduportal_backend/pkg/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is one connected window, shell or micro-frontend.
type Client struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Send    chan []byte
	Source  string
	Limiter *rate.Limiter

	state ClientState
}

// detach hands the client back to the hub, or gives up when the hub has
// already stopped and nobody is reading the unregister channel anymore.
func (c *Client) detach() {
	select {
	case c.Hub.unregister <- c:
	case <-c.Hub.done:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.detach()
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("Relay unexpected close", zap.Error(err), zap.String("source", c.Source))
			}
			break
		}

		if !c.Limiter.Allow() {
			continue
		}

		msg, err := ParseMessage(raw, c.Hub.containerSource, c.Hub.childSources)
		if err != nil {
			logger.Log.Warn("Relay message rejected", zap.Error(err), zap.String("source", c.Source))
			continue
		}
		if msg.Source != c.Source {
			logger.Log.Warn("Relay source mismatch",
				zap.String("claimed", msg.Source), zap.String("connected", c.Source))
			continue
		}

		monitoring.RelayMessageCounter.WithLabelValues(string(msg.Type), "in").Inc()
		c.Hub.inbound <- inboundMessage{client: c, msg: msg}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs upgrades the request and registers the window under its source
// tag, taken from the ?source= query parameter.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, source string) {
	conn, err := hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Relay upgrade failed", zap.Error(err), zap.String("source", source))
		return
	}
	client := &Client{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 16),
		Source:  source,
		Limiter: rate.NewLimiter(rate.Limit(10), 20),
		state:   StateAwaitingAuth,
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
