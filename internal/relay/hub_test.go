package relay

import (
	"encoding/json"
	"testing"

	"eduportal_backend/internal/config"
	"eduportal_backend/internal/session"
	"eduportal_backend/pkg/logger"

	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func testHub() *Hub {
	return NewHub(config.RelayConfig{
		ContainerSource: testContainer,
		ChildSources:    testChildren,
	})
}

// addClient wires a fabricated window straight into the hub map; the
// route tests drive the hub synchronously, no pumps involved.
func addClient(h *Hub, source string) *Client {
	c := &Client{
		Hub:    h,
		Send:   make(chan []byte, 16),
		Source: source,
		state:  StateAwaitingAuth,
	}
	h.clients[c] = true
	return c
}

func drain(t *testing.T, c *Client) *Message {
	t.Helper()
	select {
	case raw := <-c.Send:
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("bad frame on %s: %v", c.Source, err)
		}
		return &msg
	default:
		t.Fatalf("no frame delivered to %s", c.Source)
		return nil
	}
}

func assertEmpty(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.Send:
		t.Fatalf("unexpected frame on %s: %s", c.Source, raw)
	default:
	}
}

func authState() *session.State {
	return &session.State{
		IsAuthenticated: true,
		Role:            "ROLE_PROF",
		Token:           "tok-123",
		User:            session.UserInfo{Email: "p@e.org", FirstName: "P", LastName: "E"},
	}
}

func TestRouteAuthRequestForwardedToShell(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	child := addClient(h, "admin-mfe")

	h.route(child, &Message{Type: KindAuthRequest, Source: child.Source})

	msg := drain(t, shell)
	if msg.Type != KindAuthRequest {
		t.Fatalf("shell received %s, want AUTH_REQUEST", msg.Type)
	}
	assertEmpty(t, child)
}

func TestRouteAuthRequestAnsweredFromStoredState(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	child := addClient(h, "student-mfe")
	h.setCurrent(authState())

	h.route(child, &Message{Type: KindAuthRequest, Source: child.Source})

	msg := drain(t, child)
	if msg.Type != KindAuthInit {
		t.Fatalf("child received %s, want AUTH_INIT", msg.Type)
	}
	if msg.Auth == nil || msg.Auth.Token != "tok-123" {
		t.Fatalf("stored state not delivered: %+v", msg.Auth)
	}
	if child.state != StateAuthenticated {
		t.Fatalf("child state = %s, want authenticated", child.state)
	}
	// The shell is not consulted when the hub can answer itself.
	assertEmpty(t, shell)
}

func TestRouteAuthInitBroadcastToChildren(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	admin := addClient(h, "admin-mfe")
	student := addClient(h, "student-mfe")

	h.route(shell, &Message{Type: KindAuthInit, Source: shell.Source, Auth: authState()})

	for _, c := range []*Client{admin, student} {
		msg := drain(t, c)
		if msg.Type != KindAuthInit || msg.Auth == nil {
			t.Fatalf("%s received %+v", c.Source, msg)
		}
		if c.state != StateAuthenticated {
			t.Fatalf("%s state = %s, want authenticated", c.Source, c.state)
		}
	}
	assertEmpty(t, shell)

	state := h.CurrentState()
	if state == nil || state.Token != "tok-123" {
		t.Fatalf("hub did not store announced state: %+v", state)
	}
}

func TestRouteLogoutClearsStateAndBroadcasts(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	child := addClient(h, "admin-mfe")
	h.setCurrent(authState())
	child.state = StateAuthenticated

	h.route(shell, &Message{Type: KindLogout, Source: shell.Source})

	msg := drain(t, child)
	if msg.Type != KindLogout {
		t.Fatalf("child received %s, want LOGOUT", msg.Type)
	}
	if child.state != StateDisconnected {
		t.Fatalf("child state = %s, want disconnected", child.state)
	}
	if h.CurrentState() != nil {
		t.Fatal("hub state should be cleared after logout")
	}
	assertEmpty(t, shell)
}

func TestRoute401ForcesLogoutEverywhere(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	admin := addClient(h, "admin-mfe")
	student := addClient(h, "student-mfe")
	h.setCurrent(authState())
	admin.state = StateAuthenticated
	student.state = StateAuthenticated

	h.route(admin, &Message{Type: KindAuth401, Source: admin.Source})

	// Everyone gets the logout, the reporter and the shell included. The
	// frame must carry the shell's tag: children filtering on the source
	// would drop a logout tagged with the reporting sibling.
	for _, c := range []*Client{shell, admin, student} {
		msg := drain(t, c)
		if msg.Type != KindLogout {
			t.Fatalf("%s received %s, want LOGOUT", c.Source, msg.Type)
		}
		if msg.Source != testContainer {
			t.Fatalf("%s received logout tagged %q, want %q", c.Source, msg.Source, testContainer)
		}
	}
	if admin.state != StateDisconnected || student.state != StateDisconnected {
		t.Fatal("children should be disconnected after the forced logout")
	}
	if h.CurrentState() != nil {
		t.Fatal("hub state should be cleared after a 401")
	}
}

func TestRouteAuthInitWithoutTokenNotAuthenticated(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	child := addClient(h, "admin-mfe")

	// An authenticated flag without the credential itself is not a usable
	// session; the child must not be considered authenticated.
	state := authState()
	state.Token = ""
	h.route(shell, &Message{Type: KindAuthInit, Source: shell.Source, Auth: state})

	if msg := drain(t, child); msg.Type != KindAuthInit {
		t.Fatalf("child received %s, want AUTH_INIT", msg.Type)
	}
	if child.state == StateAuthenticated {
		t.Fatal("child authenticated on a payload with no token")
	}
}

func TestCurrentStateReturnsCopy(t *testing.T) {
	h := testHub()
	h.setCurrent(authState())

	first := h.CurrentState()
	first.Token = "mutated"

	second := h.CurrentState()
	if second.Token != "tok-123" {
		t.Fatalf("stored state mutated through the returned copy: %q", second.Token)
	}
}

func TestAuthUpdateReplacesStoredState(t *testing.T) {
	h := testHub()
	shell := addClient(h, testContainer)
	h.setCurrent(authState())

	updated := authState()
	updated.Token = "tok-456"
	h.route(shell, &Message{Type: KindAuthUpdate, Source: shell.Source, Auth: updated})

	state := h.CurrentState()
	if state == nil || state.Token != "tok-456" {
		t.Fatalf("stored state = %+v, want updated token", state)
	}
}
