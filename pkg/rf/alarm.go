package rf

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

// triggerAlarm reports whether the named card is an alarm of the requested
// kind. The armed flag is deliberately left to the caller: live clients see
// every trigger, only armed alarms go out as webhooks.
func (r *RF) triggerAlarm(ctx context.Context, shortname string, filter models.CardType) (*models.Card, bool, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameRFCore,
		zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFAlarm),
	)

	card, err := r.Cards.Get(ctx, shortname)
	if errors.Is(err, ErrCardNotFound) {
		// removed between resolution and this lookup
		logger.Warn("Assigned card vanished before alarm check", zap.String("shortname", shortname))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if card.Type != filter {
		return card, false, nil
	}

	switch card.Device().(type) {
	case models.AlarmDevice:
		logger.Info("Alarm triggered", zap.String("shortname", card.Shortname), zap.Bool("armed", card.Armed))
		return card, true, nil
	default:
		return card, false, nil
	}
}

type IAlarmImpl struct {
	rf *RF
}

func (ia *IAlarmImpl) Trigger(ctx context.Context, shortname string, filter models.CardType) (*models.Card, bool, error) {
	return ia.rf.triggerAlarm(ctx, shortname, filter)
}

func (r *RF) GetIAlarm() IAlarm {
	return &IAlarmImpl{rf: r}
}
