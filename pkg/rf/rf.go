// Package rf is the code association and notification engine: it stores
// observed RF codes, binds them to cards, runs the alarm workflow and fans
// the results out to live clients and webhook subscribers.
package rf

//go:generate mockgen -source=rf.go -destination=mocks/rf.go -package=mocks

import (
	"context"
	"time"

	"liyu1981.xyz/rf-code-hub/pkg/db"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

type ICodeStore interface {
	Upsert(ctx context.Context, code string) (*models.RFCode, error)
	Get(ctx context.Context, code string) (*models.RFCode, error)
	List(ctx context.Context) ([]models.RFCode, error)
	SetIgnored(ctx context.Context, code string, ignored bool) error
	RemoveWhere(ctx context.Context, filter models.CodeFilter, multi bool) (int64, error)
	Remove(ctx context.Context, code string) (int64, error)
}

type ICardStore interface {
	Create(ctx context.Context, card *models.Card) error
	Get(ctx context.Context, shortname string) (*models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	Delete(ctx context.Context, shortname string) (*models.Card, error)
	SetArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error)
	FindByCode(ctx context.Context, code string) (*models.Card, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type IAvailability interface {
	Resolve(ctx context.Context, code string) (models.Availability, error)
}

type IAlarm interface {
	Trigger(ctx context.Context, shortname string, filter models.CardType) (*models.Card, bool, error)
}

type ICardLifecycle interface {
	Add(ctx context.Context, card *models.Card) error
	Remove(ctx context.Context, shortname string) (int64, error)
	SetArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error)
}

type INotifier interface {
	NewCode(ctx context.Context, ev *models.CodeEvent)
	AlarmTriggered(ctx context.Context, card *models.Card)
	CardsChanged(ctx context.Context)
	Webhook(ctx context.Context, hook string, payload any)
}

type IIngestor interface {
	Ingest(ctx context.Context, raw []byte) error
}

// LiveBroadcaster delivers an event to every connected live subscriber.
// Implementations must not block on slow subscribers.
type LiveBroadcaster interface {
	Broadcast(event string, payload any) error
}

// WebhookDispatcher fires a named hook at its registered URLs. Delivery is
// best effort and never reported back to the caller.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, hook string, payload any)
}

type RF struct {
	Db           db.DB
	Codes        ICodeStore
	Cards        ICardStore
	Availability IAvailability
	Alarm        IAlarm
	Lifecycle    ICardLifecycle
	Notifier     INotifier
	Ingestor     IIngestor

	// Repeats folds rapid repeats of one unassigned code into a single
	// newRFCode broadcast. Detection webhooks and alarms are never folded. Nil
	// disables suppression.
	Repeats *RateLimiterStore
	// AssetsDir holds card images referenced by Card.Img.
	AssetsDir string
	Now       func() time.Time
}

type ServiceOpts struct {
	Codes        ICodeStore
	Cards        ICardStore
	Availability IAvailability
	Alarm        IAlarm
	Lifecycle    ICardLifecycle
	Notifier     INotifier
	Ingestor     IIngestor
}

func (r *RF) WithServices(opts ServiceOpts) *RF {
	if opts.Codes != nil {
		r.Codes = opts.Codes
	}
	if opts.Cards != nil {
		r.Cards = opts.Cards
	}
	if opts.Availability != nil {
		r.Availability = opts.Availability
	}
	if opts.Alarm != nil {
		r.Alarm = opts.Alarm
	}
	if opts.Lifecycle != nil {
		r.Lifecycle = opts.Lifecycle
	}
	if opts.Notifier != nil {
		r.Notifier = opts.Notifier
	}
	if opts.Ingestor != nil {
		r.Ingestor = opts.Ingestor
	}
	return r
}

// WithDefaultServices wires every service not yet set to its database backed
// implementation. The notifier defaults to a Fanout with no sinks.
func (r *RF) WithDefaultServices() *RF {
	return r.WithServices(ServiceOpts{
		Codes:        orDefault(r.Codes, r.GetICodeStore),
		Cards:        orDefault(r.Cards, r.GetICardStore),
		Availability: orDefault(r.Availability, r.GetIAvailability),
		Alarm:        orDefault(r.Alarm, r.GetIAlarm),
		Lifecycle:    orDefault(r.Lifecycle, r.GetICardLifecycle),
		Notifier:     orDefault[INotifier](r.Notifier, func() INotifier { return NewFanout(nil) }),
		Ingestor:     orDefault(r.Ingestor, r.GetIIngestor),
	})
}

func orDefault[T comparable](current T, build func() T) T {
	var zero T
	if current != zero {
		return current
	}
	return build()
}

func (r *RF) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}
