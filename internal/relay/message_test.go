package relay

import (
	"encoding/json"
	"testing"

	"eduportal_backend/internal/session"
)

const (
	testContainer = "frontend-shell"
)

var testChildren = []string{"admin-mfe", "student-mfe"}

func parse(t *testing.T, raw string) (*Message, error) {
	t.Helper()
	return ParseMessage([]byte(raw), testContainer, testChildren)
}

func TestParseMessageAuthRequest(t *testing.T) {
	msg, err := parse(t, `{"type":"AUTH_REQUEST","source":"admin-mfe"}`)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.Type != KindAuthRequest || msg.Source != "admin-mfe" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.Auth != nil {
		t.Fatal("AUTH_REQUEST should carry no auth state")
	}
}

func TestParseMessageAuthInitFromShell(t *testing.T) {
	raw := `{"type":"AUTH_INIT","source":"frontend-shell","auth":{"isAuthenticated":true,"role":"ROLE_PROF","token":"abc","user":{"email":"p@e.org","firstName":"P","lastName":"E"}}}`
	msg, err := parse(t, raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.Auth == nil || !msg.Auth.IsAuthenticated {
		t.Fatalf("auth state not decoded: %+v", msg.Auth)
	}
	if msg.Auth.User.Email != "p@e.org" {
		t.Fatalf("user email = %q", msg.Auth.User.Email)
	}
}

func TestParseMessageRejectsUnknownType(t *testing.T) {
	if _, err := parse(t, `{"type":"PING","source":"admin-mfe"}`); err == nil {
		t.Fatal("expected unknown type to be rejected")
	}
}

func TestParseMessageRejectsUnknownSource(t *testing.T) {
	if _, err := parse(t, `{"type":"AUTH_REQUEST","source":"evil-mfe"}`); err == nil {
		t.Fatal("expected unknown source to be rejected")
	}
}

func TestParseMessageRejectsAuthInitFromChild(t *testing.T) {
	raw := `{"type":"AUTH_INIT","source":"admin-mfe","auth":{"isAuthenticated":true}}`
	if _, err := parse(t, raw); err == nil {
		t.Fatal("a child must not announce auth state")
	}
}

func TestParseMessageRejectsAuthUpdateWithoutState(t *testing.T) {
	if _, err := parse(t, `{"type":"AUTH_UPDATE","source":"frontend-shell"}`); err == nil {
		t.Fatal("AUTH_UPDATE without auth state must be rejected")
	}
}

func TestParseMessageRejectsRequestFromShell(t *testing.T) {
	if _, err := parse(t, `{"type":"AUTH_REQUEST","source":"frontend-shell"}`); err == nil {
		t.Fatal("the shell must not request auth state")
	}
	if _, err := parse(t, `{"type":"AUTH_401_ERROR","source":"frontend-shell"}`); err == nil {
		t.Fatal("the shell must not report a 401")
	}
}

func TestParseMessageRejectsMalformedJSON(t *testing.T) {
	if _, err := parse(t, `{"type":`); err == nil {
		t.Fatal("expected malformed frame to be rejected")
	}
}

func TestMessageEncodeOmitsEmptyAuth(t *testing.T) {
	msg := &Message{Type: KindLogout, Source: testContainer}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(msg.Encode(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["auth"]; ok {
		t.Fatal("auth key should be omitted when no state is carried")
	}
	if string(decoded["type"]) != `"LOGOUT"` {
		t.Fatalf("type = %s", decoded["type"])
	}
}

func TestMessageEncodeRoundTrip(t *testing.T) {
	msg := &Message{
		Type:   KindAuthUpdate,
		Source: testContainer,
		Auth: &session.State{
			IsAuthenticated: true,
			Role:            "ROLE_ADMIN",
			Token:           "tok",
			User:            session.UserInfo{Email: "a@e.org", FirstName: "A", LastName: "B"},
		},
	}
	back, err := ParseMessage(msg.Encode(), testContainer, testChildren)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if back.Auth.Token != "tok" || back.Auth.Role != "ROLE_ADMIN" {
		t.Fatalf("round trip lost auth state: %+v", back.Auth)
	}
}
