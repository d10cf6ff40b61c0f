// Package relay carries authentication state between the portal shell and
// the micro-frontend windows over a websocket channel. The shell is the
// authority: it announces auth state, children request and consume it.
package relay

import (
	"encoding/json"
	"fmt"

	"eduportal_backend/internal/session"
)

// Kind is the closed set of relay message types. Anything else on the
// channel is dropped.
type Kind string

const (
	// KindAuthRequest is sent by a child window that needs the current
	// auth state.
	KindAuthRequest Kind = "AUTH_REQUEST"
	// KindAuthInit carries the initial auth state from the shell.
	KindAuthInit Kind = "AUTH_INIT"
	// KindAuthUpdate carries a changed auth state from the shell.
	KindAuthUpdate Kind = "AUTH_UPDATE"
	// KindLogout tells every window to drop its session.
	KindLogout Kind = "LOGOUT"
	// KindAuth401 is sent by a child whose API call came back 401; the
	// relay answers with a LOGOUT broadcast.
	KindAuth401 Kind = "AUTH_401_ERROR"
)

func (k Kind) Valid() bool {
	switch k {
	case KindAuthRequest, KindAuthInit, KindAuthUpdate, KindLogout, KindAuth401:
		return true
	}
	return false
}

// Message is the relay envelope. Auth is present only on the
// state-carrying kinds.
type Message struct {
	Type   Kind           `json:"type"`
	Source string         `json:"source"`
	Auth   *session.State `json:"auth,omitempty"`
}

// ParseMessage decodes and validates a raw frame against the tags the
// relay is configured to accept.
func ParseMessage(raw []byte, containerSource string, childSources []string) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}
	if !msg.Type.Valid() {
		return nil, fmt.Errorf("type de message inconnu: %q", msg.Type)
	}
	if !knownSource(msg.Source, containerSource, childSources) {
		return nil, fmt.Errorf("source inconnue: %q", msg.Source)
	}

	switch msg.Type {
	case KindAuthInit, KindAuthUpdate:
		if msg.Source != containerSource {
			return nil, fmt.Errorf("seul %s peut émettre %s", containerSource, msg.Type)
		}
		if msg.Auth == nil {
			return nil, fmt.Errorf("%s exige un état d'authentification", msg.Type)
		}
	case KindAuthRequest, KindAuth401:
		if msg.Source == containerSource {
			return nil, fmt.Errorf("%s ne peut pas émettre %s", containerSource, msg.Type)
		}
	}
	return &msg, nil
}

func knownSource(source, containerSource string, childSources []string) bool {
	if source == containerSource {
		return true
	}
	for _, s := range childSources {
		if s == source {
			return true
		}
	}
	return false
}

func (m *Message) Encode() []byte {
	raw, _ := json.Marshal(m)
	return raw
}
