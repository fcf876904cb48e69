package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastReturnsWhenManagerIsStopped(t *testing.T) {
	// The loop never runs, so nothing drains the broadcast channel.
	m := NewManager()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*4; i++ {
			m.Broadcast([]byte(`{"type":"order.created"}`))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "Broadcast blocked without a running manager loop")
	}
}

func TestSendToUserIgnoresDisconnectedUser(t *testing.T) {
	m := NewManager()

	done := make(chan struct{})
	go func() {
		m.SendToUser("ghost", []byte("hello"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "SendToUser blocked for an unknown user")
	}
}
