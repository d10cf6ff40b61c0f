package relay

import (
	"testing"
	"time"
)

func TestDetachHandsClientBackToHub(t *testing.T) {
	h := testHub()
	go h.Run()
	defer h.Stop()

	c := &Client{Hub: h, Send: make(chan []byte, 16), Source: "admin-mfe", state: StateAwaitingAuth}
	h.register <- c

	c.detach()

	// The hub closes the send channel when it releases a client.
	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("unexpected frame instead of channel close")
		}
	case <-time.After(time.Second):
		t.Fatal("hub never released the client")
	}
}

func TestDetachAfterHubStopReturns(t *testing.T) {
	h := testHub()
	h.Stop()

	// Once the hub loop has exited nothing reads the unregister channel;
	// detach must still return instead of leaking the read pump.
	c := &Client{Hub: h, Send: make(chan []byte, 16), Source: "admin-mfe"}
	finished := make(chan struct{})
	go func() {
		c.detach()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("detach blocked after hub stop")
	}
}
