package rf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	_ "liyu1981.xyz/rf-code-hub/pkg/testing"
)

func TestTriggerAlarm(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, rfObj, _, _, _ := GetMockRFWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	mustCreateCard(t, rfObj, models.Card{Shortname: "A", Type: models.CardTypeAlarm, TriggerCode: "555"})
	mustCreateCard(t, rfObj, models.Card{Shortname: "S", Type: models.CardTypeSwitch, OnCode: "111"})

	// triggered regardless of armed state
	card, triggered, err := rfObj.Alarm.Trigger(ctx, "A", models.CardTypeAlarm)
	require.NoError(t, err)
	assert.True(t, triggered)
	assert.Equal(t, "A", card.Shortname)
	assert.False(t, card.Armed)

	card, triggered, err = rfObj.Alarm.Trigger(ctx, "S", models.CardTypeAlarm)
	require.NoError(t, err)
	assert.False(t, triggered)
	assert.Equal(t, "S", card.Shortname)

	_, triggered, err = rfObj.Alarm.Trigger(ctx, "A", models.CardTypeSwitch)
	require.NoError(t, err)
	assert.False(t, triggered)
}

func TestTriggerAlarm_VanishedCard(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, rfObj, _, _, _ := GetMockRFWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	card, triggered, err := rfObj.Alarm.Trigger(context.Background(), "gone", models.CardTypeAlarm)
	require.NoError(t, err)
	assert.False(t, triggered)
	assert.Nil(t, card)

	found := false
	for _, log := range ParseLogs(buf) {
		lobj := log.(map[string]any)
		if lobj["category"] == "alarm" &&
			lobj["logger"] == "rf_core" &&
			lobj["msg"] == "Assigned card vanished before alarm check" &&
			lobj["shortname"] == "gone" {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}
