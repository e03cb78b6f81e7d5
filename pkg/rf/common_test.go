package rf

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/rf-code-hub/pkg/db"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	"liyu1981.xyz/rf-code-hub/pkg/rf/mocks"
)

// testClock is a settable clock for first/last seen assertions.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// GetMockRFWithMemorySqliteDialector builds an engine over a private in-memory
// database. The use* flags swap the notifier, alarm workflow and code store
// for mocks.
func GetMockRFWithMemorySqliteDialector(t *testing.T, useMockNotifier, useMockAlarm, useMockCodes bool) (
	*gomock.Controller,
	*RF,
	*mocks.MockINotifier,
	*mocks.MockIAlarm,
	*mocks.MockICodeStore,
) {
	ctrl := gomock.NewController(t)

	mockNotifier := mocks.NewMockINotifier(ctrl)
	mockAlarm := mocks.NewMockIAlarm(ctrl)
	mockCodes := mocks.NewMockICodeStore(ctrl)

	dbInstance, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	clock := newTestClock()
	rfInstance := &RF{Db: *dbInstance, Now: clock.Now, AssetsDir: t.TempDir()}

	opts := ServiceOpts{}
	if useMockNotifier {
		opts.Notifier = mockNotifier
	}
	if useMockAlarm {
		opts.Alarm = mockAlarm
	}
	if useMockCodes {
		opts.Codes = mockCodes
	}
	rfInstance.WithServices(opts).WithDefaultServices()

	return ctrl, rfInstance, mockNotifier, mockAlarm, mockCodes
}

func mustCreateCard(t *testing.T, r *RF, card models.Card) *models.Card {
	t.Helper()
	require.NoError(t, r.Cards.Create(context.Background(), &card))
	return &card
}

func mustObserve(t *testing.T, r *RF, codes ...string) {
	t.Helper()
	for _, code := range codes {
		_, err := r.Codes.Upsert(context.Background(), code)
		require.NoError(t, err)
	}
}

func rawEvent(code string, status string) []byte {
	b, _ := json.Marshal(map[string]any{"code": code, "status": status})
	return b
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
