// Package webhook delivers named hooks to operator registered URLs. Delivery
// is fire and forget: one POST per subscriber, no retry, failures logged.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/db"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

const HeaderHook = "X-RF-Hook"

var (
	ErrWebhookNotFound = errors.New("webhook not found")
	ErrWebhookExists   = errors.New("webhook already registered")
	ErrInvalidWebhook  = errors.New("invalid webhook")
)

// Hooks lists the hook names subscribers may register for.
var Hooks = []string{"code-detected", "alarm-advise"}

var webhookSchema = z.Struct(z.Shape{
	"Hook": z.String().OneOf(Hooks).Required(),
	"URL":  z.String().URL().Required(),
})

type Dispatcher struct {
	db     db.DB
	client *resty.Client
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(database db.DB, timeout time.Duration) *Dispatcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "rfhub-webhook")

	return &Dispatcher{
		db:     database,
		client: client,
		logger: common.GetLoggerWith(common.LoggerNameWebhook),
	}
}

func (d *Dispatcher) Register(ctx context.Context, hook, url string) (*models.Webhook, error) {
	req := struct {
		Hook string
		URL  string
	}{Hook: hook, URL: url}
	if issues := webhookSchema.Validate(&req); len(issues) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhook, issues)
	}

	wh := models.Webhook{ID: uuid.NewString(), Hook: hook, URL: url, CreatedAt: time.Now().UTC()}
	result := d.db.Conn.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&wh)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrWebhookExists, hook, url)
	}

	d.logger.Info("Registered webhook", zap.String("id", wh.ID), zap.String("hook", hook), zap.String("url", url))
	return &wh, nil
}

func (d *Dispatcher) Unregister(ctx context.Context, id string) error {
	result := d.db.Conn.WithContext(ctx).Delete(&models.Webhook{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrWebhookNotFound, id)
	}
	d.logger.Info("Unregistered webhook", zap.String("id", id))
	return nil
}

// List returns the subscribers of hook, or all of them for an empty hook.
func (d *Dispatcher) List(ctx context.Context, hook string) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	query := d.db.Conn.WithContext(ctx).Order("created_at, id")
	if hook != "" {
		query = query.Where("hook = ?", hook)
	}
	if err := query.Find(&webhooks).Error; err != nil {
		return nil, err
	}
	return webhooks, nil
}

// Dispatch posts payload to every subscriber of hook on its own goroutine.
// The calls outlive ctx cancellation; each is bounded by the client timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, hook string, payload any) {
	subscribers, err := d.List(ctx, hook)
	if err != nil {
		d.logger.Error("Failed to load webhook subscribers", zap.String("hook", hook), zap.Error(err))
		return
	}

	d.logger.Debug("Dispatching webhook",
		zap.String("hook", hook),
		zap.Strings("urls", common.Mapper(subscribers, func(wh models.Webhook) string { return wh.URL })),
	)

	deliveryCtx := context.WithoutCancel(ctx)
	for _, wh := range subscribers {
		d.wg.Add(1)
		go func(wh models.Webhook) {
			defer d.wg.Done()
			d.deliver(deliveryCtx, wh, payload)
		}(wh)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, wh models.Webhook, payload any) {
	logger := d.logger.With(zap.String("hook", wh.Hook), zap.String("url", wh.URL))

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader(HeaderHook, wh.Hook).
		SetBody(payload).
		Post(wh.URL)
	if err != nil {
		logger.Warn("Webhook delivery failed", zap.Error(err))
		return
	}
	if resp.IsError() {
		logger.Warn("Webhook subscriber rejected delivery", zap.Int("status_code", resp.StatusCode()))
		return
	}
	logger.Debug("Webhook delivered", zap.Int("status_code", resp.StatusCode()), zap.Duration("took", resp.Time()))
}

// Wait blocks until every delivery started so far has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
