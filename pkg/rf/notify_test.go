package rf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	"liyu1981.xyz/rf-code-hub/pkg/rf/mocks"
)

func TestFanout_BroadcastsToEverySink(t *testing.T) {
	common.SetTestLoggerNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockLiveBroadcaster(ctrl)
	second := mocks.NewMockLiveBroadcaster(ctrl)
	dispatcher := mocks.NewMockWebhookDispatcher(ctrl)

	ctx := context.Background()
	raw := map[string]any{"code": "999", "status": "received"}
	card := &models.Card{Shortname: "A", Type: models.CardTypeAlarm, TriggerCode: "555", Armed: true}

	// a failing sink does not stop the next one
	first.EXPECT().Broadcast(EventNewRFCode, raw).Return(errors.New("gone"))
	second.EXPECT().Broadcast(EventNewRFCode, raw).Return(nil)
	first.EXPECT().Broadcast(EventTriggerAlarm, card).Return(nil)
	second.EXPECT().Broadcast(EventTriggerAlarm, card).Return(nil)
	first.EXPECT().Broadcast(EventRefreshCards, nil).Return(nil)
	second.EXPECT().Broadcast(EventRefreshCards, nil).Return(nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), HookAlarmAdvise, card).Times(1)

	fanout := NewFanout(dispatcher, first)
	fanout.AddSink(second)

	fanout.NewCode(ctx, &models.CodeEvent{Code: "999", Status: "received", Raw: raw})
	fanout.AlarmTriggered(ctx, card)
	fanout.CardsChanged(ctx)
	fanout.Webhook(ctx, HookAlarmAdvise, card)
	fanout.Close()
}

type blockingSink struct {
	release chan struct{}
}

func (b *blockingSink) Broadcast(event string, payload any) error {
	<-b.release
	return nil
}

func TestFanout_SlowSinkDoesNotDelayOthers(t *testing.T) {
	common.SetTestLoggerNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slow := &blockingSink{release: make(chan struct{})}
	fast := mocks.NewMockLiveBroadcaster(ctrl)

	delivered := make(chan string, 3)
	fast.EXPECT().
		Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(event string, _ any) error {
			delivered <- event
			return nil
		}).
		Times(3)

	fanout := NewFanout(nil, slow, fast)
	ctx := context.Background()
	fanout.NewCode(ctx, &models.CodeEvent{Code: "1", Raw: map[string]any{"code": "1"}})
	fanout.AlarmTriggered(ctx, &models.Card{Shortname: "A"})
	fanout.CardsChanged(ctx)

	var got []string
	for range 3 {
		select {
		case event := <-delivered:
			got = append(got, event)
		case <-time.After(time.Second):
			t.Fatal("fast sink was held up by the slow one")
		}
	}
	assert.Equal(t, []string{EventNewRFCode, EventTriggerAlarm, EventRefreshCards}, got)

	close(slow.release)
	fanout.Close()
}

func TestFanout_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	common.SetTestLoggerNop()

	slow := &blockingSink{release: make(chan struct{})}
	fanout := NewFanout(nil, slow)

	done := make(chan struct{})
	go func() {
		for range sinkQueueSize * 3 {
			fanout.CardsChanged(context.Background())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a stuck sink")
	}

	close(slow.release)
	fanout.Close()
	assert.NotPanics(t, func() { fanout.CardsChanged(context.Background()) })
}

func TestFanout_NoDispatcher(t *testing.T) {
	common.SetTestLoggerNop()

	fanout := NewFanout(nil)
	assert.NotPanics(t, func() {
		fanout.Webhook(context.Background(), HookCodeDetected, map[string]any{"code": "1"})
		fanout.CardsChanged(context.Background())
	})
}
