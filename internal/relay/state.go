package relay

// ClientState tracks where a child window stands in the auth handshake.
type ClientState int

const (
	// StateAwaitingAuth: connected, no auth state delivered yet.
	StateAwaitingAuth ClientState = iota
	// StateAuthenticated: an auth payload has been delivered.
	StateAuthenticated
	// StateDisconnected: logged out (anonymous payload, LOGOUT, forced
	// 401 logout) or the socket dropped; a reconnect starts over at
	// StateAwaitingAuth.
	StateDisconnected
)

func (s ClientState) String() string {
	switch s {
	case StateAwaitingAuth:
		return "awaiting_auth"
	case StateAuthenticated:
		return "authenticated"
	case StateDisconnected:
		return "disconnected"
	}
	return "unknown"
}

// next returns the state after a delivered message kind.
// AUTH_INIT/AUTH_UPDATE with a usable credential moves the window
// forward; an anonymous payload, a LOGOUT or a forced 401 logout all
// disconnect it.
func (s ClientState) next(kind Kind, authenticated bool) ClientState {
	switch kind {
	case KindAuthInit, KindAuthUpdate:
		if authenticated {
			return StateAuthenticated
		}
		return StateDisconnected
	case KindLogout, KindAuth401:
		return StateDisconnected
	}
	return s
}
