package application

import (
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"github.com/wyfcoding/exoticpricing/pkg/metrics"
)

// PricingService 聚合命令与查询服务，作为接口层的统一入口
type PricingService struct {
	*PricingCommandService
	*PricingQueryService
}

// NewPricingService 创建新的 PricingService 实例
func NewPricingService(
	repo domain.ValuationRepository,
	cache domain.ValuationCache,
	publisher domain.ResultPublisher,
	marketData domain.MarketDataClient,
	m *metrics.Metrics,
	lookbackDays int,
) *PricingService {
	return &PricingService{
		PricingCommandService: NewPricingCommandService(repo, cache, publisher, marketData, m, lookbackDays),
		PricingQueryService:   NewPricingQueryService(repo, cache),
	}
}
