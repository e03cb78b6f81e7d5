package rf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

func (r *RF) addCard(ctx context.Context, card *models.Card) error {
	if err := r.Cards.Create(ctx, card); err != nil {
		return err
	}
	r.Notifier.CardsChanged(ctx)
	return nil
}

// removeCard deletes the card and cascades to the codes it owned and its
// image. Subscribers are told to refresh whatever happened to the cascade.
func (r *RF) removeCard(ctx context.Context, shortname string) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameRFCore,
		zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFCard),
	)

	card, err := r.Cards.Delete(ctx, shortname)
	if err != nil {
		return 0, err
	}

	var removed int64
	var cascadeErr error
	if codes := card.BoundCodes(); len(codes) > 0 {
		removed, cascadeErr = r.Codes.RemoveWhere(ctx, models.CodeFilter{Codes: codes}, true)
		if cascadeErr != nil {
			logger.Error("Failed to remove codes of deleted card",
				zap.String("shortname", shortname),
				zap.Strings("codes", codes),
				zap.Error(cascadeErr),
			)
		}
	}

	if card.Img != "" {
		r.removeAsset(logger, card.Img)
	}

	r.Notifier.CardsChanged(ctx)

	logger.Info("Removed card", zap.String("shortname", shortname), zap.Int64("removed_codes", removed))
	if cascadeErr != nil {
		return removed, fmt.Errorf("%w: %w", ErrCascadeFailed, cascadeErr)
	}
	return removed, nil
}

func (r *RF) removeAsset(logger *zap.Logger, img string) {
	// only ever delete inside the assets dir
	path := filepath.Join(r.AssetsDir, filepath.Base(img))

	err := os.Remove(path)
	switch {
	case err == nil:
		logger.Info("Removed card asset", zap.String("path", path))
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Card asset already missing", zap.String("path", path))
	default:
		logger.Error("Failed to remove card asset", zap.String("path", path), zap.Error(err))
	}
}

func (r *RF) setArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error) {
	card, err := r.Cards.SetArmed(ctx, shortname, armed)
	if err != nil {
		return nil, err
	}
	r.Notifier.CardsChanged(ctx)
	return card, nil
}

type ICardLifecycleImpl struct {
	rf *RF
}

func (il *ICardLifecycleImpl) Add(ctx context.Context, card *models.Card) error {
	return il.rf.addCard(ctx, card)
}

func (il *ICardLifecycleImpl) Remove(ctx context.Context, shortname string) (int64, error) {
	return il.rf.removeCard(ctx, shortname)
}

func (il *ICardLifecycleImpl) SetArmed(ctx context.Context, shortname string, armed bool) (*models.Card, error) {
	return il.rf.setArmed(ctx, shortname, armed)
}

func (r *RF) GetICardLifecycle() ICardLifecycle {
	return &ICardLifecycleImpl{rf: r}
}
