package rf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

var codeEventSchema = z.Struct(z.Shape{
	"Code":   z.String().Min(1).Required(),
	"Status": z.String().Min(1).Required(),
})

// ParseCodeEvent decodes one transport frame. The code may arrive as a JSON
// string or number; either way it is keyed as its decimal text.
func ParseCodeEvent(raw []byte) (*models.CodeEvent, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEvent)
	}

	ev := models.CodeEvent{Raw: payload}
	switch code := payload["code"].(type) {
	case string:
		ev.Code = strings.TrimSpace(code)
	case json.Number:
		ev.Code = code.String()
	}
	ev.Status, _ = payload["status"].(string)

	if issues := codeEventSchema.Validate(&ev); len(issues) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, issues)
	}
	return &ev, nil
}

// ingest drives one event through
// received -> stored -> resolved -> (available | assigned) -> [triggered] -> notified.
// A failure aborts this event only.
func (r *RF) ingest(ctx context.Context, raw []byte) error {
	logger := common.GetLoggerWith(
		common.LoggerNameRFCore,
		zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFIngest),
	)

	ev, err := ParseCodeEvent(raw)
	if err != nil {
		logger.Warn("Dropping malformed code event", zap.ByteString("raw", raw), zap.Error(err))
		return err
	}

	if !ev.Received() {
		logger.Debug("Ignoring code event", zap.String("code", ev.Code), zap.String("status", ev.Status))
		return nil
	}

	if _, err := r.Codes.Upsert(ctx, ev.Code); err != nil {
		logger.Error("Failed to store code", zap.String("code", ev.Code), zap.Error(err))
		return fmt.Errorf("store code %s: %w", ev.Code, err)
	}

	availability, err := r.Availability.Resolve(ctx, ev.Code)
	if err != nil {
		logger.Error("Failed to resolve code", zap.String("code", ev.Code), zap.Error(err))
		return fmt.Errorf("resolve code %s: %w", ev.Code, err)
	}

	switch {
	case availability.Available:
		if !r.Repeats.Allow(ev.Code) {
			logger.Debug("Suppressing repeated new code", zap.String("code", ev.Code))
			break
		}
		logger.Info("New code", zap.String("code", ev.Code))
		r.Notifier.NewCode(ctx, ev)

	case availability.AssignedTo != "":
		card, triggered, err := r.Alarm.Trigger(ctx, availability.AssignedTo, models.CardTypeAlarm)
		if err != nil {
			logger.Error("Failed to check alarm", zap.String("code", ev.Code), zap.Error(err))
			return fmt.Errorf("check alarm %s: %w", availability.AssignedTo, err)
		}
		if triggered {
			r.Notifier.AlarmTriggered(ctx, card)
			if card.IsArmedAlarm() {
				r.Notifier.Webhook(ctx, HookAlarmAdvise, card)
			}
		}

	default:
		logger.Debug("Ignored code", zap.String("code", ev.Code))
	}

	r.Notifier.Webhook(ctx, HookCodeDetected, ev.Raw)
	return nil
}

// Run feeds transport events to the ingestor until ctx is done or the
// transport closes its channel. Each event runs on its own goroutine so a
// slow store call never holds up the radio; steps of one event stay ordered.
func (r *RF) Run(ctx context.Context, t Transport) error {
	events := t.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-events:
			if !ok {
				return nil
			}
			go func(raw []byte) {
				_ = r.Ingestor.Ingest(ctx, raw)
			}(raw)
		}
	}
}

type IIngestorImpl struct {
	rf *RF
}

func (ii *IIngestorImpl) Ingest(ctx context.Context, raw []byte) error {
	return ii.rf.ingest(ctx, raw)
}

func (r *RF) GetIIngestor() IIngestor {
	return &IIngestorImpl{rf: r}
}
