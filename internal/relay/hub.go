package relay

import (
	"net/http"
	"sync"

	"eduportal_backend/internal/config"
	"eduportal_backend/internal/session"
	"eduportal_backend/pkg/logger"
	"eduportal_backend/pkg/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type inboundMessage struct {
	client *Client
	msg    *Message
}

// Hub routes auth messages between the shell window and the child
// windows. It also keeps the latest auth state so a child connecting
// after login gets answered without a round trip to the shell.
type Hub struct {
	containerSource string
	childSources    []string
	upgrader        websocket.Upgrader

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	inbound    chan inboundMessage
	done       chan struct{}

	mu      sync.RWMutex
	current *session.State
}

func NewHub(cfg config.RelayConfig) *Hub {
	h := &Hub{
		containerSource: cfg.ContainerSource,
		childSources:    cfg.ChildSources,
		clients:         make(map[*Client]bool),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		inbound:         make(chan inboundMessage, 64),
		done:            make(chan struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.AllowedOrigins),
	}
	return h
}

// originChecker accepts any origin when no whitelist is configured, the
// local development setup.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		return set[r.Header.Get("Origin")]
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			monitoring.RelayConnectedWindows.Inc()

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				client.state = StateDisconnected
				monitoring.RelayConnectedWindows.Dec()
			}

		case in := <-h.inbound:
			h.route(in.client, in.msg)

		case <-h.done:
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			monitoring.RelayConnectedWindows.Set(0)
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) route(from *Client, msg *Message) {
	switch msg.Type {
	case KindAuthRequest:
		// Answer from the stored state when the shell already announced
		// it; otherwise ask the shell.
		if state := h.CurrentState(); state != nil {
			reply := &Message{Type: KindAuthInit, Source: h.containerSource, Auth: state}
			h.sendTo(from, reply)
			from.state = from.state.next(KindAuthInit, authPresent(state))
			return
		}
		h.sendToContainer(msg)

	case KindAuthInit, KindAuthUpdate:
		h.setCurrent(msg.Auth)
		h.broadcastToChildren(from, msg)

	case KindLogout:
		h.setCurrent(nil)
		h.broadcast(from, msg)

	case KindAuth401:
		// A child hit an expired or revoked token: force every window
		// out, the shell included.
		logger.Log.Info("Relay 401 received, broadcasting logout", zap.String("source", msg.Source))
		h.setCurrent(nil)
		// The forced logout speaks for the shell, not for the child that
		// reported the 401: children only accept container-tagged frames.
		logout := &Message{Type: KindLogout, Source: h.containerSource}
		h.broadcast(nil, logout)
	}
}

func (h *Hub) sendTo(client *Client, msg *Message) {
	select {
	case client.Send <- msg.Encode():
		monitoring.RelayMessageCounter.WithLabelValues(string(msg.Type), "out").Inc()
	default:
	}
}

func (h *Hub) sendToContainer(msg *Message) {
	for client := range h.clients {
		if client.Source == h.containerSource {
			h.sendTo(client, msg)
		}
	}
}

// authPresent reports whether a payload carries a usable credential: the
// flag alone is not enough, the token itself must be there.
func authPresent(state *session.State) bool {
	return state != nil && state.IsAuthenticated && state.Token != ""
}

// broadcastToChildren delivers a shell announcement to every child
// window and advances their handshake state.
func (h *Hub) broadcastToChildren(from *Client, msg *Message) {
	authenticated := authPresent(msg.Auth)
	for client := range h.clients {
		if client == from || client.Source == h.containerSource {
			continue
		}
		h.sendTo(client, msg)
		client.state = client.state.next(msg.Type, authenticated)
	}
}

// broadcast delivers to every window except the sender.
func (h *Hub) broadcast(from *Client, msg *Message) {
	for client := range h.clients {
		if client == from {
			continue
		}
		h.sendTo(client, msg)
		client.state = client.state.next(msg.Type, false)
	}
}

func (h *Hub) setCurrent(state *session.State) {
	h.mu.Lock()
	h.current = state
	h.mu.Unlock()
}

// CurrentState returns a copy of the last announced auth state, nil
// before login and after logout.
func (h *Hub) CurrentState() *session.State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	state := *h.current
	return &state
}
