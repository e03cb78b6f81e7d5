package rf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

func cardLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRFCore,
		zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFCard),
	)
}

var cardSchema = z.Struct(z.Shape{
	"Shortname": z.String().Trim().Min(1).Max(64).Required(),
	"Type":      z.String().OneOf([]string{string(models.CardTypeSwitch), string(models.CardTypeAlarm)}).Required(),
})

// validateCard checks the common shape with zog, then the per kind device
// requirements.
func validateCard(card *models.Card) error {
	shape := struct {
		Shortname string
		Type      string
	}{Shortname: card.Shortname, Type: string(card.Type)}

	if issues := cardSchema.Validate(&shape); len(issues) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCard, issues)
	}
	card.Shortname = strings.TrimSpace(card.Shortname)

	switch d := card.Device().(type) {
	case models.SwitchDevice:
		if len(d.Codes()) == 0 {
			return fmt.Errorf("%w: switch %s needs an on_code or an off_code", ErrInvalidCard, card.Shortname)
		}
		if d.OnCode != "" && d.OnCode == d.OffCode {
			return fmt.Errorf("%w: switch %s uses %s for both on and off", ErrInvalidCard, card.Shortname, d.OnCode)
		}
		card.TriggerCode, card.Armed = "", false
	case models.AlarmDevice:
		if d.TriggerCode == "" {
			return fmt.Errorf("%w: alarm %s needs a trigger_code", ErrInvalidCard, card.Shortname)
		}
		card.OnCode, card.OffCode = "", ""
	default:
		return fmt.Errorf("%w: unknown card type %q", ErrInvalidCard, card.Type)
	}
	return nil
}

func (r *RF) createCard(ctx context.Context, card *models.Card) error {
	if err := validateCard(card); err != nil {
		return err
	}

	if _, err := r.getCard(ctx, card.Shortname); err == nil {
		return fmt.Errorf("%w: %s", ErrCardExists, card.Shortname)
	} else if !errors.Is(err, ErrCardNotFound) {
		return err
	}

	for _, code := range card.BoundCodes() {
		owner, err := r.findCardByCode(ctx, code)
		if err != nil {
			return err
		}
		if owner != nil {
			return fmt.Errorf("%w: %s belongs to %s", ErrCodeAssigned, code, owner.Shortname)
		}
	}

	card.CreatedAt = r.now()
	if err := r.Db.Conn.WithContext(ctx).Create(card).Error; err != nil {
		return err
	}

	cardLogger().Info("Created card", zap.Reflect("card", card))
	return nil
}

func (r *RF) getCard(ctx context.Context, shortname string) (*models.Card, error) {
	var card models.Card
	err := r.Db.Conn.WithContext(ctx).First(&card, "shortname = ?", shortname).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, shortname)
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *RF) listCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := r.Db.Conn.WithContext(ctx).
		Order("created_at asc").
		Order("shortname asc").
		Find(&cards).Error
	return cards, err
}

func (r *RF) deleteCard(ctx context.Context, shortname string) (*models.Card, error) {
	card, err := r.getCard(ctx, shortname)
	if err != nil {
		return nil, err
	}

	res := r.Db.Conn.WithContext(ctx).Delete(&models.Card{}, "shortname = ?", shortname)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, shortname)
	}

	cardLogger().Info("Deleted card", zap.Reflect("card", card))
	return card, nil
}

func (r *RF) setCardArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error) {
	card, err := r.getCard(ctx, shortname)
	if err != nil {
		return nil, err
	}
	if _, ok := card.Device().(models.AlarmDevice); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnAlarm, shortname)
	}

	err = r.Db.Conn.WithContext(ctx).
		Model(&models.Card{}).
		Where("shortname = ?", shortname).
		Update("armed", armed).Error
	if err != nil {
		return nil, err
	}

	card.Armed = armed
	cardLogger().Info("Changed alarm armed state", zap.String("shortname", shortname), zap.Bool("armed", armed))
	return card, nil
}

// findCardByCode narrows candidates in SQL, then lets the card's device decide
// ownership so a stray column on the wrong kind never matches. The oldest
// owner wins when bindings overlap.
func (r *RF) findCardByCode(ctx context.Context, code string) (*models.Card, error) {
	if code == "" {
		return nil, nil
	}

	var candidates []models.Card
	err := r.Db.Conn.WithContext(ctx).
		Where("on_code = ? OR off_code = ? OR trigger_code = ?", code, code, code).
		Order("created_at asc").
		Order("shortname asc").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		if d := candidates[i].Device(); d != nil && d.Owns(code) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// DefaultCards are seeded into an empty store so a fresh install has
// something to look at.
var DefaultCards = []models.Card{
	{
		Shortname: "lamp",
		Name:      "Living room lamp",
		Type:      models.CardTypeSwitch,
		OnCode:    "1361",
		OffCode:   "1364",
	},
	{
		Shortname:   "door",
		Name:        "Front door sensor",
		Type:        models.CardTypeAlarm,
		TriggerCode: "5592405",
		Armed:       false,
	},
}

func (r *RF) seedDefaultCards(ctx context.Context) (int, error) {
	var count int64
	if err := r.Db.Conn.WithContext(ctx).Model(&models.Card{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seeded := 0
	for _, card := range DefaultCards {
		c := card
		if err := r.createCard(ctx, &c); err != nil {
			return seeded, err
		}
		seeded++
	}

	cardLogger().Info("Seeded default cards", zap.Int("count", seeded))
	return seeded, nil
}

type ICardStoreImpl struct {
	rf *RF
}

func (ic *ICardStoreImpl) Create(ctx context.Context, card *models.Card) error {
	return ic.rf.createCard(ctx, card)
}

func (ic *ICardStoreImpl) Get(ctx context.Context, shortname string) (*models.Card, error) {
	return ic.rf.getCard(ctx, shortname)
}

func (ic *ICardStoreImpl) List(ctx context.Context) ([]models.Card, error) {
	return ic.rf.listCards(ctx)
}

func (ic *ICardStoreImpl) Delete(ctx context.Context, shortname string) (*models.Card, error) {
	return ic.rf.deleteCard(ctx, shortname)
}

func (ic *ICardStoreImpl) SetArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error) {
	return ic.rf.setCardArmed(ctx, shortname, armed)
}

func (ic *ICardStoreImpl) FindByCode(ctx context.Context, code string) (*models.Card, error) {
	return ic.rf.findCardByCode(ctx, code)
}

func (ic *ICardStoreImpl) SeedDefaults(ctx context.Context) (int, error) {
	return ic.rf.seedDefaultCards(ctx)
}

func (r *RF) GetICardStore() ICardStore {
	return &ICardStoreImpl{rf: r}
}
