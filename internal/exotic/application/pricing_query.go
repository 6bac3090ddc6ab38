package application

import (
	"context"

	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"github.com/wyfcoding/exoticpricing/pkg/logger"
)

// PricingQueryService 处理所有估值相关的查询操作（Queries）。
type PricingQueryService struct {
	repo  domain.ValuationRepository
	cache domain.ValuationCache
}

// NewPricingQueryService 构造函数。
func NewPricingQueryService(repo domain.ValuationRepository, cache domain.ValuationCache) *PricingQueryService {
	return &PricingQueryService{repo: repo, cache: cache}
}

// GetLatest 查询某标的最近一次估值，优先读缓存
func (q *PricingQueryService) GetLatest(ctx context.Context, symbol string) (*ValuationDTO, error) {
	if q.cache != nil {
		run, err := q.cache.GetLatest(ctx, symbol)
		if err == nil && run != nil {
			return toValuationDTO(run), nil
		}
		if err != nil {
			logger.WithContext(ctx).Warn("valuation cache read failed", "symbol", symbol, "error", err)
		}
	}

	if q.repo == nil {
		return nil, domain.ErrValuationNotFound
	}
	run, err := q.repo.GetLatest(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return toValuationDTO(run), nil
}

// GetHistory 查询某标的的估值历史，按时间倒序
func (q *PricingQueryService) GetHistory(ctx context.Context, symbol string, limit int) ([]*ValuationDTO, error) {
	if q.repo == nil {
		return nil, domain.ErrValuationNotFound
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	runs, err := q.repo.GetHistory(ctx, symbol, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]*ValuationDTO, 0, len(runs))
	for _, run := range runs {
		dtos = append(dtos, toValuationDTO(run))
	}
	return dtos, nil
}

func toValuationDTO(run *domain.ValuationRun) *ValuationDTO {
	return &ValuationDTO{
		ID:               run.ID,
		Symbol:           run.Symbol,
		OptionType:       string(run.OptionType),
		BarrierDirection: string(run.BarrierDirection),
		StrikePrice:      run.StrikePrice.String(),
		BarrierPrice:     run.BarrierPrice.String(),
		InitialPrice:     run.InitialPrice.String(),
		RiskFreeRate:     run.RiskFreeRate.String(),
		Volatility:       run.Volatility.String(),
		Horizon:          run.Horizon,
		StepSize:         run.StepSize,
		PathCount:        run.PathCount,
		Seed:             run.Seed,
		AsianPrice:       run.AsianPrice.String(),
		BarrierOutPrice:  run.BarrierOutPrice.String(),
		ElapsedSeconds:   run.ElapsedSeconds,
		CalculatedAt:     run.CalculatedAt,
	}
}
