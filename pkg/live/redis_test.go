package live

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/rf-code-hub/pkg/common"
)

func TestRedisMirror_Publishes(t *testing.T) {
	common.SetTestLoggerNop()

	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr())
	mirror := NewRedisMirror(client, "rfhub:events")
	defer mirror.Close()

	ctx := context.Background()
	require.NoError(t, mirror.Ping(ctx))

	sub := client.Subscribe(ctx, "rfhub:events")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	card := map[string]any{"shortname": "door", "type": "alarm", "armed": true}
	require.NoError(t, mirror.Broadcast("uiTriggerAlarm", card))

	select {
	case m := <-sub.Channel():
		var msg Message
		require.NoError(t, json.Unmarshal([]byte(m.Payload), &msg))
		assert.Equal(t, TypeEvent, msg.Type)
		assert.Equal(t, "uiTriggerAlarm", msg.Event)
		assert.Equal(t, card, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no message mirrored")
	}
}

func TestRedisMirror_ServerDown(t *testing.T) {
	common.SetTestLoggerNop()

	mr := miniredis.RunT(t)
	mirror := NewRedisMirror(NewRedisClient(mr.Addr()), "rfhub:events")
	defer mirror.Close()
	mr.Close()

	assert.Error(t, mirror.Broadcast("uiRefreshCards", nil))
}
