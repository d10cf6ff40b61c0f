package relay

import "testing"

func TestClientStateTransitions(t *testing.T) {
	tests := []struct {
		name          string
		from          ClientState
		kind          Kind
		authenticated bool
		want          ClientState
	}{
		{"init authenticates", StateAwaitingAuth, KindAuthInit, true, StateAuthenticated},
		{"init with anonymous state disconnects", StateAwaitingAuth, KindAuthInit, false, StateDisconnected},
		{"update authenticates", StateAwaitingAuth, KindAuthUpdate, true, StateAuthenticated},
		{"update with anonymous state disconnects", StateAuthenticated, KindAuthUpdate, false, StateDisconnected},
		{"logout disconnects", StateAuthenticated, KindLogout, false, StateDisconnected},
		{"logout while awaiting disconnects", StateAwaitingAuth, KindLogout, false, StateDisconnected},
		{"request does not move state", StateAuthenticated, KindAuthRequest, false, StateAuthenticated},
		{"forced 401 logout disconnects", StateAuthenticated, KindAuth401, false, StateDisconnected},
	}
	for _, tt := range tests {
		if got := tt.from.next(tt.kind, tt.authenticated); got != tt.want {
			t.Errorf("%s: next(%s, %v) from %s = %s, want %s",
				tt.name, tt.kind, tt.authenticated, tt.from, got, tt.want)
		}
	}
}

func TestClientStateString(t *testing.T) {
	if StateAwaitingAuth.String() != "awaiting_auth" {
		t.Fatalf("StateAwaitingAuth = %q", StateAwaitingAuth.String())
	}
	if StateAuthenticated.String() != "authenticated" {
		t.Fatalf("StateAuthenticated = %q", StateAuthenticated.String())
	}
	if StateDisconnected.String() != "disconnected" {
		t.Fatalf("StateDisconnected = %q", StateDisconnected.String())
	}
}
