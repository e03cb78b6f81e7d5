package live

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/rf-code-hub/pkg/common"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	server := httptest.NewServer(hub)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewHub()
	first, closeFirst := dialHub(t, hub)
	defer closeFirst()
	second, closeSecond := dialHub(t, hub)
	defer closeSecond()

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast("newRFCode", map[string]any{"code": "999", "status": "received"}))

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		assert.Equal(t, TypeEvent, msg.Type)
		assert.Equal(t, "newRFCode", msg.Event)
		assert.Equal(t, map[string]any{"code": "999", "status": "received"}, msg.Payload)
		assert.NotEmpty(t, msg.Timestamp)
	}
}

func TestHub_NilPayload(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewHub()
	conn, closeConn := dialHub(t, hub)
	defer closeConn()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast("uiRefreshCards", nil))
	msg := readMessage(t, conn)
	assert.Equal(t, "uiRefreshCards", msg.Event)
	assert.Nil(t, msg.Payload)
}

func TestHub_PingPong(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewHub()
	conn, closeConn := dialHub(t, hub)
	defer closeConn()

	require.NoError(t, conn.WriteJSON(Message{Type: TypePing, ID: "42"}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypePong, msg.Type)
	assert.Equal(t, "42", msg.ID)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	msg = readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewHub()
	conn, closeConn := dialHub(t, hub)
	defer closeConn()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	// nobody listening is not an error
	assert.NoError(t, hub.Broadcast("uiRefreshCards", nil))
}

func TestHub_RunClosesClients(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewHub()
	conn, closeConn := dialHub(t, hub)
	defer closeConn()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	assert.Equal(t, 0, hub.ClientCount())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
