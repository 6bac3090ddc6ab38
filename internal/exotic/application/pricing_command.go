package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"github.com/wyfcoding/exoticpricing/pkg/logger"
	"github.com/wyfcoding/exoticpricing/pkg/metrics"
)

// PricingCommandService 处理估值相关的命令操作
type PricingCommandService struct {
	repo       domain.ValuationRepository
	cache      domain.ValuationCache
	publisher  domain.ResultPublisher
	marketData domain.MarketDataClient
	metrics    *metrics.Metrics
	// lookbackDays 为波动率估计使用的历史收盘价天数
	lookbackDays int
}

// NewPricingCommandService 创建新的 PricingCommandService 实例
func NewPricingCommandService(
	repo domain.ValuationRepository,
	cache domain.ValuationCache,
	publisher domain.ResultPublisher,
	marketData domain.MarketDataClient,
	m *metrics.Metrics,
	lookbackDays int,
) *PricingCommandService {
	if lookbackDays < 3 {
		lookbackDays = 60
	}
	return &PricingCommandService{
		repo:         repo,
		cache:        cache,
		publisher:    publisher,
		marketData:   marketData,
		metrics:      m,
		lookbackDays: lookbackDays,
	}
}

// PriceExotic 对亚式与障碍期权做一次蒙特卡洛估值
func (c *PricingCommandService) PriceExotic(ctx context.Context, cmd PriceExoticCommand) (*domain.ValuationRun, error) {
	if cmd.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", domain.ErrInvalidParameter)
	}
	optType := domain.OptionType(cmd.OptionType)
	if !optType.Valid() {
		return nil, fmt.Errorf("%w: unknown option type %q", domain.ErrInvalidParameter, cmd.OptionType)
	}
	dir := domain.BarrierDirection(cmd.BarrierDirection)
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: unknown barrier direction %q", domain.ErrInvalidParameter, cmd.BarrierDirection)
	}

	if err := c.resolveMarketInputs(ctx, &cmd); err != nil {
		return nil, err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := domain.SimulationParams{
		InitialPrice: cmd.InitialPrice,
		Drift:        cmd.RiskFreeRate,
		Volatility:   cmd.Volatility,
		Horizon:      cmd.Horizon,
		StepSize:     cmd.StepSize,
		PathCount:    cmd.PathCount,
	}

	start := time.Now()
	matrix, err := domain.SimulatePaths(params, domain.NewPseudoNormalSource(seed))
	if err != nil {
		c.recordError()
		return nil, fmt.Errorf("simulating paths: %w", err)
	}

	asian, err := domain.AsianOptionValue(matrix, optType, cmd.StrikePrice, cmd.RiskFreeRate, cmd.Horizon)
	if err != nil {
		c.recordError()
		return nil, fmt.Errorf("valuing asian option: %w", err)
	}

	barrier, err := domain.BarrierOptionValue(matrix, optType, dir, cmd.StrikePrice, cmd.BarrierPrice, cmd.RiskFreeRate, cmd.Horizon)
	if err != nil {
		c.recordError()
		return nil, fmt.Errorf("valuing barrier option: %w", err)
	}
	elapsed := time.Since(start)

	run := &domain.ValuationRun{
		Symbol:           cmd.Symbol,
		OptionType:       optType,
		BarrierDirection: dir,
		StrikePrice:      decimal.NewFromFloat(cmd.StrikePrice),
		BarrierPrice:     decimal.NewFromFloat(cmd.BarrierPrice),
		InitialPrice:     decimal.NewFromFloat(cmd.InitialPrice),
		RiskFreeRate:     decimal.NewFromFloat(cmd.RiskFreeRate),
		Volatility:       decimal.NewFromFloat(cmd.Volatility),
		Horizon:          cmd.Horizon,
		StepSize:         cmd.StepSize,
		PathCount:        cmd.PathCount,
		Seed:             seed,
		AsianPrice:       decimal.NewFromFloat(asian),
		BarrierOutPrice:  decimal.NewFromFloat(barrier),
		ElapsedSeconds:   elapsed.Seconds(),
		CalculatedAt:     time.Now().Unix(),
	}

	if c.repo != nil {
		if err := c.repo.Save(ctx, run); err != nil {
			c.recordError()
			return nil, fmt.Errorf("saving valuation: %w", err)
		}
	}

	if c.cache != nil {
		if err := c.cache.SetLatest(ctx, run); err != nil {
			logger.WithContext(ctx).Warn("caching valuation failed", "symbol", cmd.Symbol, "error", err)
		}
	}

	if c.publisher != nil {
		event := &domain.ExoticOptionPricedEvent{
			Symbol:           cmd.Symbol,
			OptionType:       optType,
			BarrierDirection: dir,
			StrikePrice:      cmd.StrikePrice,
			BarrierPrice:     cmd.BarrierPrice,
			InitialPrice:     cmd.InitialPrice,
			RiskFreeRate:     cmd.RiskFreeRate,
			Volatility:       cmd.Volatility,
			Horizon:          cmd.Horizon,
			PathCount:        cmd.PathCount,
			Seed:             seed,
			AsianPrice:       asian,
			BarrierOutPrice:  barrier,
			ElapsedSeconds:   elapsed.Seconds(),
			CalculatedAt:     run.CalculatedAt,
			OccurredOn:       time.Now(),
		}
		if err := c.publisher.PublishExoticOptionPriced(ctx, event); err != nil {
			logger.WithContext(ctx).Warn("publishing valuation event failed", "symbol", cmd.Symbol, "error", err)
		}
	}

	if c.metrics != nil {
		c.metrics.ValuationsTotal.Inc()
		c.metrics.ValuationDuration.Observe(elapsed.Seconds())
		c.metrics.SimulatedPathsTotal.Add(float64(cmd.PathCount))
	}

	logger.WithContext(ctx).Info("exotic valuation done",
		"symbol", cmd.Symbol,
		"paths", cmd.PathCount,
		"seed", seed,
		"asian_price", asian,
		"barrier_price", barrier,
		"elapsed", elapsed,
	)

	return run, nil
}

// RunConvergenceSweep 在多个路径数下重复估值，观察蒙特卡洛收敛
func (c *PricingCommandService) RunConvergenceSweep(ctx context.Context, cmd SweepCommand) ([]*SweepRecordDTO, error) {
	if len(cmd.PathCounts) == 0 {
		return nil, fmt.Errorf("%w: path counts are required", domain.ErrInvalidParameter)
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	records := make([]*SweepRecordDTO, 0, len(cmd.PathCounts))
	for i, paths := range cmd.PathCounts {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		priceCmd := PriceExoticCommand{
			Symbol:           cmd.Symbol,
			OptionType:       cmd.OptionType,
			BarrierDirection: cmd.BarrierDirection,
			StrikePrice:      cmd.StrikePrice,
			BarrierPrice:     cmd.BarrierPrice,
			InitialPrice:     cmd.InitialPrice,
			RiskFreeRate:     cmd.RiskFreeRate,
			Volatility:       cmd.Volatility,
			Horizon:          cmd.Horizon,
			StepSize:         cmd.StepSize,
			PathCount:        paths,
			// 每个路径数使用独立但可复现的种子
			Seed: seed + int64(i),
		}
		run, err := c.PriceExotic(ctx, priceCmd)
		if err != nil {
			return nil, fmt.Errorf("sweep at %d paths: %w", paths, err)
		}
		records = append(records, &SweepRecordDTO{
			PathCount:      paths,
			AsianPrice:     run.AsianPrice.InexactFloat64(),
			BarrierPrice:   run.BarrierOutPrice.InexactFloat64(),
			ElapsedSeconds: run.ElapsedSeconds,
		})
	}

	if c.publisher != nil {
		event := &domain.ConvergenceSweepDoneEvent{
			Symbol:     cmd.Symbol,
			PathCounts: cmd.PathCounts,
			Seed:       seed,
			OccurredOn: time.Now(),
		}
		if err := c.publisher.PublishConvergenceSweepDone(ctx, event); err != nil {
			logger.WithContext(ctx).Warn("publishing sweep event failed", "symbol", cmd.Symbol, "error", err)
		}
	}

	return records, nil
}

// resolveMarketInputs 补全命令中缺失的现价与波动率
func (c *PricingCommandService) resolveMarketInputs(ctx context.Context, cmd *PriceExoticCommand) error {
	if cmd.InitialPrice <= 0 {
		if c.marketData == nil {
			return fmt.Errorf("%w: initial price is required when no market data client is configured", domain.ErrInvalidParameter)
		}
		spot, err := c.marketData.GetSpotPrice(ctx, cmd.Symbol)
		if err != nil {
			return fmt.Errorf("fetching spot price for %s: %w", cmd.Symbol, err)
		}
		cmd.InitialPrice = spot.InexactFloat64()
	}

	if cmd.Volatility <= 0 {
		if c.marketData == nil {
			return fmt.Errorf("%w: volatility is required when no market data client is configured", domain.ErrInvalidParameter)
		}
		closes, err := c.marketData.GetDailyCloses(ctx, cmd.Symbol, c.lookbackDays)
		if err != nil {
			return fmt.Errorf("fetching daily closes for %s: %w", cmd.Symbol, err)
		}
		vol, err := domain.AnnualizedVolatility(closes)
		if err != nil {
			return fmt.Errorf("estimating volatility for %s: %w", cmd.Symbol, err)
		}
		cmd.Volatility = vol

		if c.publisher != nil {
			event := &domain.VolatilityEstimatedEvent{
				Symbol:       cmd.Symbol,
				Volatility:   vol,
				LookbackDays: c.lookbackDays,
				OccurredOn:   time.Now(),
			}
			if err := c.publisher.PublishVolatilityEstimated(ctx, event); err != nil {
				logger.WithContext(ctx).Warn("publishing volatility event failed", "symbol", cmd.Symbol, "error", err)
			}
		}
	}

	return nil
}

func (c *PricingCommandService) recordError() {
	if c.metrics != nil {
		c.metrics.ValuationErrorsTotal.Inc()
	}
}
