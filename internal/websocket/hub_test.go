package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hubNopLogger struct{}

func (hubNopLogger) Debug(string, string, map[string]interface{}) {}
func (hubNopLogger) Info(string, string, map[string]interface{})  {}
func (hubNopLogger) Warn(string, string, map[string]interface{})  {}
func (hubNopLogger) Error(string, string, map[string]interface{}) {}
func (hubNopLogger) Sync() error                                  { return nil }

func drain(c *Client) [][]byte {
	var got [][]byte
	for {
		select {
		case msg := <-c.Send:
			got = append(got, msg)
		default:
			return got
		}
	}
}

func TestHubBroadcastStaysInRoom(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	eng1 := NewClient(nil)
	eng2 := NewClient(nil)
	fin := NewClient(nil)

	hub.Join(eng1, "Engineering")
	hub.Join(eng2, "Engineering")
	hub.Join(fin, "Finance")

	hub.Broadcast("Engineering", []byte("hello"))

	assert.Len(t, drain(eng1), 1)
	assert.Len(t, drain(eng2), 1)
	assert.Empty(t, drain(fin))
}

func TestHubBroadcastIncludesSender(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	sender := NewClient(nil)
	hub.Join(sender, "Engineering")

	hub.Broadcast("Engineering", []byte("echo"))

	got := drain(sender)
	require.Len(t, got, 1)
	assert.Equal(t, "echo", string(got[0]))
}

func TestHubRejoinMovesRooms(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	client := NewClient(nil)

	hub.Join(client, "Engineering")
	hub.Join(client, "Finance")

	assert.Equal(t, 0, hub.RoomSize("Engineering"))
	assert.Equal(t, 1, hub.RoomSize("Finance"))
	assert.Equal(t, "Finance", client.CurrentRoom)

	hub.Broadcast("Engineering", []byte("stale"))
	assert.Empty(t, drain(client))
}

func TestHubLeaveClosesSend(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	client := NewClient(nil)
	hub.Join(client, "Engineering")

	hub.Leave(client)

	assert.Equal(t, 0, hub.RoomSize("Engineering"))
	_, open := <-client.Send
	assert.False(t, open)

	// A second leave must be a no-op, not a double close.
	hub.Leave(client)
}

func TestHubPrunesSlowClient(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	slow := NewClient(nil)
	fast := NewClient(nil)
	hub.Join(slow, "Engineering")
	hub.Join(fast, "Engineering")

	// Fill the slow client's buffer without draining it.
	for i := 0; i < cap(slow.Send); i++ {
		slow.Send <- []byte("fill")
	}

	hub.Broadcast("Engineering", []byte("overflow"))

	// The slow client is out, the healthy one still receives.
	assert.Equal(t, 1, hub.RoomSize("Engineering"))
	assert.Equal(t, "", slow.CurrentRoom)

	got := drain(fast)
	require.Len(t, got, 1)
	assert.Equal(t, "overflow", string(got[0]))

	hub.Broadcast("Engineering", []byte("after"))
	assert.Len(t, drain(fast), 1)
}

func TestHubEmitToPrunedClient(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	slow := NewClient(nil)
	healthy := NewClient(nil)
	hub.Join(slow, "Engineering")
	hub.Join(healthy, "Engineering")

	for i := 0; i < cap(slow.Send); i++ {
		slow.Send <- []byte("fill")
	}
	hub.Broadcast("Engineering", []byte("overflow"))
	require.Equal(t, "", slow.CurrentRoom)

	// Late emits to the evicted client must be dropped without panicking.
	hub.EmitTo(slow, []byte("late"))
	hub.EmitTo(slow, []byte("later"))

	// Only the buffered backlog remains, then the channel close.
	for i := 0; i < cap(slow.Send); i++ {
		msg, open := <-slow.Send
		require.True(t, open)
		require.Equal(t, "fill", string(msg))
	}
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHubEmitToAfterLeave(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	client := NewClient(nil)
	hub.Join(client, "Engineering")
	hub.Leave(client)

	hub.EmitTo(client, []byte("late"))

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubEmitToPrunesFullBuffer(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	client := NewClient(nil)
	hub.Join(client, "Engineering")

	for i := 0; i < cap(client.Send); i++ {
		client.Send <- []byte("fill")
	}
	hub.EmitTo(client, []byte("overflow"))

	assert.Equal(t, 0, hub.RoomSize("Engineering"))
	assert.Equal(t, "", client.CurrentRoom)
}

func TestHubEmitTo(t *testing.T) {
	hub := NewHub(hubNopLogger{})
	target := NewClient(nil)
	other := NewClient(nil)
	hub.Join(target, "Engineering")
	hub.Join(other, "Engineering")

	hub.EmitTo(target, []byte("direct"))

	got := drain(target)
	require.Len(t, got, 1)
	assert.Equal(t, "direct", string(got[0]))
	assert.Empty(t, drain(other))
}
