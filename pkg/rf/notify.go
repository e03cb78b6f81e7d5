package rf

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

// Live event names.
const (
	EventNewRFCode    = "newRFCode"
	EventTriggerAlarm = "uiTriggerAlarm"
	EventRefreshCards = "uiRefreshCards"
	HookCodeDetected  = "code-detected"
	HookAlarmAdvise   = "alarm-advise"
)

// sinkQueueSize bounds how many events one slow sink may fall behind.
const sinkQueueSize = 64

type liveEvent struct {
	name    string
	payload any
}

// sinkWorker owns one sink so a slow or failing sink never delays the
// others. Events reach each sink in the order they were broadcast.
type sinkWorker struct {
	sink  LiveBroadcaster
	queue chan liveEvent
}

// Fanout is the default INotifier. Every live sink gets every event on its
// own worker; a sink that fails is logged and skipped, and a sink whose
// queue is full drops the event.
type Fanout struct {
	mu         sync.RWMutex
	workers    []*sinkWorker
	closed     bool
	wg         sync.WaitGroup
	dispatcher WebhookDispatcher
	logger     *zap.Logger
}

func NewFanout(dispatcher WebhookDispatcher, sinks ...LiveBroadcaster) *Fanout {
	f := &Fanout{
		dispatcher: dispatcher,
		logger: common.GetLoggerWith(
			common.LoggerNameRFCore,
			zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFNotify),
		),
	}
	for _, sink := range sinks {
		f.AddSink(sink)
	}
	return f
}

func (f *Fanout) AddSink(sink LiveBroadcaster) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	w := &sinkWorker{sink: sink, queue: make(chan liveEvent, sinkQueueSize)}
	f.workers = append(f.workers, w)
	f.wg.Add(1)
	go f.drain(w)
}

func (f *Fanout) drain(w *sinkWorker) {
	defer f.wg.Done()
	for ev := range w.queue {
		if err := w.sink.Broadcast(ev.name, ev.payload); err != nil {
			f.logger.Warn("Live broadcast failed", zap.String("event", ev.name), zap.Error(err))
		}
	}
}

func (f *Fanout) broadcast(event string, payload any) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return
	}

	for _, w := range f.workers {
		select {
		case w.queue <- liveEvent{name: event, payload: payload}:
		default:
			f.logger.Warn("Live sink is behind, dropping event", zap.String("event", event))
		}
	}
}

// Close stops accepting events and waits until every queued event has been
// handed to its sink.
func (f *Fanout) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for _, w := range f.workers {
		close(w.queue)
	}
	f.mu.Unlock()

	f.wg.Wait()
}

func (f *Fanout) NewCode(ctx context.Context, ev *models.CodeEvent) {
	f.broadcast(EventNewRFCode, ev.Raw)
}

func (f *Fanout) AlarmTriggered(ctx context.Context, card *models.Card) {
	f.broadcast(EventTriggerAlarm, card)
}

func (f *Fanout) CardsChanged(ctx context.Context) {
	f.broadcast(EventRefreshCards, nil)
}

func (f *Fanout) Webhook(ctx context.Context, hook string, payload any) {
	if f.dispatcher == nil {
		f.logger.Debug("No webhook dispatcher, dropping hook", zap.String("hook", hook))
		return
	}
	f.dispatcher.Dispatch(ctx, hook, payload)
}
