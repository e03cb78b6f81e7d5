package rf

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
)

func codeLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRFCore,
		zap.String(common.LoggerFieldRFCategory, common.LoggerCategoryRFCode),
	)
}

func (r *RF) upsertCode(ctx context.Context, code string) (*models.RFCode, error) {
	now := r.now()
	record := models.RFCode{
		Code:        code,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}

	conn := r.Db.Conn.WithContext(ctx)

	// first_seen_at and ignored are only written on insert
	err := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	var stored models.RFCode
	if err := conn.First(&stored, "code = ?", code).Error; err != nil {
		return nil, err
	}

	codeLogger().Debug("Upserted code", zap.Reflect("code", stored))

	return &stored, nil
}

func (r *RF) getCode(ctx context.Context, code string) (*models.RFCode, error) {
	var record models.RFCode
	err := r.Db.Conn.WithContext(ctx).First(&record, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RF) listCodes(ctx context.Context) ([]models.RFCode, error) {
	var records []models.RFCode
	err := r.Db.Conn.WithContext(ctx).
		Order("last_seen_at desc").
		Find(&records).Error
	return records, err
}

func (r *RF) setCodeIgnored(ctx context.Context, code string, ignored bool) error {
	res := r.Db.Conn.WithContext(ctx).
		Model(&models.RFCode{}).
		Where("code = ?", code).
		Update("ignored", ignored)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}

	codeLogger().Info("Changed code ignore flag", zap.String("code", code), zap.Bool("ignored", ignored))
	return nil
}

func applyCodeFilter(q *gorm.DB, filter models.CodeFilter) *gorm.DB {
	if len(filter.Codes) > 0 {
		q = q.Where("code IN ?", filter.Codes)
	}
	if filter.IgnoredOnly {
		q = q.Where("ignored = ?", true)
	}
	return q
}

func (r *RF) removeCodesWhere(ctx context.Context, filter models.CodeFilter, multi bool) (int64, error) {
	if filter.Empty() {
		return 0, nil
	}

	conn := r.Db.Conn.WithContext(ctx)

	if !multi {
		// sqlite is not built with DELETE ... LIMIT, pick the row first
		var first models.RFCode
		err := applyCodeFilter(conn.Model(&models.RFCode{}), filter).Order("code").Take(&first).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		filter = models.CodeFilter{Codes: []string{first.Code}}
	}

	res := applyCodeFilter(conn, filter).Delete(&models.RFCode{})
	if res.Error != nil {
		return 0, res.Error
	}

	codeLogger().Info("Removed codes",
		zap.Strings("codes", filter.Codes),
		zap.Bool("ignored_only", filter.IgnoredOnly),
		zap.Int64("removed", res.RowsAffected),
	)

	return res.RowsAffected, nil
}

type ICodeStoreImpl struct {
	rf *RF
}

func (ic *ICodeStoreImpl) Upsert(ctx context.Context, code string) (*models.RFCode, error) {
	return ic.rf.upsertCode(ctx, code)
}

func (ic *ICodeStoreImpl) Get(ctx context.Context, code string) (*models.RFCode, error) {
	return ic.rf.getCode(ctx, code)
}

func (ic *ICodeStoreImpl) List(ctx context.Context) ([]models.RFCode, error) {
	return ic.rf.listCodes(ctx)
}

func (ic *ICodeStoreImpl) SetIgnored(ctx context.Context, code string, ignored bool) error {
	return ic.rf.setCodeIgnored(ctx, code, ignored)
}

func (ic *ICodeStoreImpl) RemoveWhere(ctx context.Context, filter models.CodeFilter, multi bool) (int64, error) {
	return ic.rf.removeCodesWhere(ctx, filter, multi)
}

func (ic *ICodeStoreImpl) Remove(ctx context.Context, code string) (int64, error) {
	return ic.rf.removeCodesWhere(ctx, models.CodeFilter{Codes: []string{code}}, false)
}

func (r *RF) GetICodeStore() ICodeStore {
	return &ICodeStoreImpl{rf: r}
}
