package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// MarketDataClient 市场数据客户端接口
type MarketDataClient interface {
	// GetSpotPrice 获取标的最新价格
	GetSpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	// GetDailyCloses 获取最近 days 个交易日的收盘价序列，按时间升序
	GetDailyCloses(ctx context.Context, symbol string, days int) ([]float64, error)
}

// ValuationRepository 估值历史仓储接口
type ValuationRepository interface {
	Save(ctx context.Context, run *ValuationRun) error
	GetLatest(ctx context.Context, symbol string) (*ValuationRun, error)
	GetHistory(ctx context.Context, symbol string, limit int) ([]*ValuationRun, error)
}

// ValuationCache 估值结果缓存接口
type ValuationCache interface {
	SetLatest(ctx context.Context, run *ValuationRun) error
	GetLatest(ctx context.Context, symbol string) (*ValuationRun, error)
}

// ResultPublisher 估值事件发布接口
type ResultPublisher interface {
	PublishExoticOptionPriced(ctx context.Context, event *ExoticOptionPricedEvent) error
	PublishConvergenceSweepDone(ctx context.Context, event *ConvergenceSweepDoneEvent) error
	PublishVolatilityEstimated(ctx context.Context, event *VolatilityEstimatedEvent) error
}
