package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"gorm.io/gorm"
)

type valuationRepository struct {
	db *gorm.DB
}

// NewValuationRepository 创建并返回一个新的 valuationRepository 实例。
func NewValuationRepository(db *gorm.DB) domain.ValuationRepository {
	return &valuationRepository{db: db}
}

func (r *valuationRepository) Save(ctx context.Context, run *domain.ValuationRun) error {
	model := toValuationRunModel(run)
	if model == nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	run.ID = model.ID
	run.CreatedAt = model.CreatedAt
	run.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *valuationRepository) GetLatest(ctx context.Context, symbol string) (*domain.ValuationRun, error) {
	var model ValuationRunModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("calculated_at desc, id desc").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrValuationNotFound
	}
	if err != nil {
		return nil, err
	}
	return toValuationRun(&model), nil
}

func (r *valuationRepository) GetHistory(ctx context.Context, symbol string, limit int) ([]*domain.ValuationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var models []ValuationRunModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("calculated_at desc, id desc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	runs := make([]*domain.ValuationRun, 0, len(models))
	for i := range models {
		runs = append(runs, toValuationRun(&models[i]))
	}
	return runs, nil
}
