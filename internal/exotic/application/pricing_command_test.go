package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

type memoryRepo struct {
	mu   sync.Mutex
	runs []*domain.ValuationRun
}

func (r *memoryRepo) Save(_ context.Context, run *domain.ValuationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run.ID = uint(len(r.runs) + 1)
	r.runs = append(r.runs, run)
	return nil
}

func (r *memoryRepo) GetLatest(_ context.Context, symbol string) (*domain.ValuationRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.runs) - 1; i >= 0; i-- {
		if r.runs[i].Symbol == symbol {
			return r.runs[i], nil
		}
	}
	return nil, domain.ErrValuationNotFound
}

func (r *memoryRepo) GetHistory(_ context.Context, symbol string, limit int) ([]*domain.ValuationRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ValuationRun
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.runs[i].Symbol == symbol {
			out = append(out, r.runs[i])
		}
	}
	return out, nil
}

type stubMarketData struct {
	spot   decimal.Decimal
	closes []float64
	err    error
}

func (s *stubMarketData) GetSpotPrice(_ context.Context, _ string) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.spot, nil
}

func (s *stubMarketData) GetDailyCloses(_ context.Context, _ string, _ int) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.closes, nil
}

type capturePublisher struct {
	priced []*domain.ExoticOptionPricedEvent
	sweeps []*domain.ConvergenceSweepDoneEvent
	vols   []*domain.VolatilityEstimatedEvent
}

func (p *capturePublisher) PublishExoticOptionPriced(_ context.Context, e *domain.ExoticOptionPricedEvent) error {
	p.priced = append(p.priced, e)
	return nil
}

func (p *capturePublisher) PublishConvergenceSweepDone(_ context.Context, e *domain.ConvergenceSweepDoneEvent) error {
	p.sweeps = append(p.sweeps, e)
	return nil
}

func (p *capturePublisher) PublishVolatilityEstimated(_ context.Context, e *domain.VolatilityEstimatedEvent) error {
	p.vols = append(p.vols, e)
	return nil
}

func validCommand() PriceExoticCommand {
	return PriceExoticCommand{
		Symbol:           "TECH",
		OptionType:       "CALL",
		BarrierDirection: "UP_AND_OUT",
		StrikePrice:      105,
		BarrierPrice:     150,
		InitialPrice:     100,
		RiskFreeRate:     0.055,
		Volatility:       0.2,
		Horizon:          1,
		StepSize:         1.0 / 252,
		PathCount:        2000,
		Seed:             77,
	}
}

func TestPriceExotic(t *testing.T) {
	repo := &memoryRepo{}
	pub := &capturePublisher{}
	svc := NewPricingCommandService(repo, nil, pub, nil, nil, 60)

	run, err := svc.PriceExotic(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("PriceExotic: %v", err)
	}
	if run.ID == 0 {
		t.Error("run was not persisted")
	}
	if run.Seed != 77 {
		t.Errorf("seed = %d, want 77", run.Seed)
	}
	if run.AsianPrice.IsNegative() || run.BarrierOutPrice.IsNegative() {
		t.Errorf("negative prices: asian=%s barrier=%s", run.AsianPrice, run.BarrierOutPrice)
	}
	if run.ElapsedSeconds <= 0 {
		t.Errorf("elapsed = %v, want positive", run.ElapsedSeconds)
	}

	if len(pub.priced) != 1 {
		t.Fatalf("published events = %d, want 1", len(pub.priced))
	}
	if pub.priced[0].Symbol != "TECH" || pub.priced[0].PathCount != 2000 {
		t.Errorf("unexpected event: %+v", pub.priced[0])
	}
}

func TestPriceExoticReproducibleAcrossCalls(t *testing.T) {
	svc := NewPricingCommandService(&memoryRepo{}, nil, nil, nil, nil, 60)

	first, err := svc.PriceExotic(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.PriceExotic(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !first.AsianPrice.Equal(second.AsianPrice) {
		t.Errorf("same seed gave different asian prices: %s vs %s", first.AsianPrice, second.AsianPrice)
	}
	if !first.BarrierOutPrice.Equal(second.BarrierOutPrice) {
		t.Errorf("same seed gave different barrier prices: %s vs %s", first.BarrierOutPrice, second.BarrierOutPrice)
	}
}

func TestPriceExoticResolvesMarketInputs(t *testing.T) {
	md := &stubMarketData{
		spot:   decimal.NewFromInt(120),
		closes: []float64{100, 102, 101, 103, 104, 102, 105},
	}
	pub := &capturePublisher{}
	svc := NewPricingCommandService(&memoryRepo{}, nil, pub, md, nil, 60)

	cmd := validCommand()
	cmd.InitialPrice = 0
	cmd.Volatility = 0

	run, err := svc.PriceExotic(context.Background(), cmd)
	if err != nil {
		t.Fatalf("PriceExotic: %v", err)
	}
	if !run.InitialPrice.Equal(decimal.NewFromInt(120)) {
		t.Errorf("initial price = %s, want 120 from market data", run.InitialPrice)
	}
	if !run.Volatility.IsPositive() {
		t.Errorf("volatility = %s, want positive estimate", run.Volatility)
	}

	if len(pub.vols) != 1 {
		t.Fatalf("volatility events = %d, want 1", len(pub.vols))
	}
	if pub.vols[0].Symbol != "TECH" || pub.vols[0].LookbackDays != 60 {
		t.Errorf("unexpected volatility event: %+v", pub.vols[0])
	}
	if pub.vols[0].Volatility != run.Volatility.InexactFloat64() {
		t.Errorf("event volatility %v differs from run volatility %s", pub.vols[0].Volatility, run.Volatility)
	}
}

func TestPriceExoticNoVolatilityEventWhenSupplied(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewPricingCommandService(&memoryRepo{}, nil, pub, nil, nil, 60)

	if _, err := svc.PriceExotic(context.Background(), validCommand()); err != nil {
		t.Fatalf("PriceExotic: %v", err)
	}
	if len(pub.vols) != 0 {
		t.Errorf("volatility events = %d, want 0 when volatility is caller supplied", len(pub.vols))
	}
}

func TestPriceExoticMarketDataFailure(t *testing.T) {
	md := &stubMarketData{err: errors.New("feed down")}
	svc := NewPricingCommandService(&memoryRepo{}, nil, nil, md, nil, 60)

	cmd := validCommand()
	cmd.InitialPrice = 0
	if _, err := svc.PriceExotic(context.Background(), cmd); err == nil {
		t.Fatal("expected error when spot price fetch fails")
	}
}

func TestPriceExoticValidation(t *testing.T) {
	svc := NewPricingCommandService(&memoryRepo{}, nil, nil, nil, nil, 60)

	cases := []struct {
		name   string
		mutate func(*PriceExoticCommand)
	}{
		{"missing symbol", func(c *PriceExoticCommand) { c.Symbol = "" }},
		{"bad option type", func(c *PriceExoticCommand) { c.OptionType = "BUTTERFLY" }},
		{"bad direction", func(c *PriceExoticCommand) { c.BarrierDirection = "SIDEWAYS" }},
		{"zero paths", func(c *PriceExoticCommand) { c.PathCount = 0 }},
		{"zero step size", func(c *PriceExoticCommand) { c.StepSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validCommand()
			tc.mutate(&cmd)
			if _, err := svc.PriceExotic(context.Background(), cmd); !errors.Is(err, domain.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRunConvergenceSweep(t *testing.T) {
	repo := &memoryRepo{}
	pub := &capturePublisher{}
	svc := NewPricingCommandService(repo, nil, pub, nil, nil, 60)

	cmd := SweepCommand{
		Symbol:           "TECH",
		OptionType:       "CALL",
		BarrierDirection: "UP_AND_OUT",
		StrikePrice:      105,
		BarrierPrice:     150,
		InitialPrice:     100,
		RiskFreeRate:     0.055,
		Volatility:       0.2,
		Horizon:          1,
		StepSize:         1.0 / 252,
		PathCounts:       []int{500, 1000, 2000},
		Seed:             5,
	}

	records, err := svc.RunConvergenceSweep(context.Background(), cmd)
	if err != nil {
		t.Fatalf("RunConvergenceSweep: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i, rec := range records {
		if rec.PathCount != cmd.PathCounts[i] {
			t.Errorf("record %d path count = %d, want %d", i, rec.PathCount, cmd.PathCounts[i])
		}
		if rec.AsianPrice < 0 || rec.BarrierPrice < 0 {
			t.Errorf("record %d has negative price: %+v", i, rec)
		}
		if rec.ElapsedSeconds <= 0 {
			t.Errorf("record %d elapsed = %v, want positive", i, rec.ElapsedSeconds)
		}
	}

	if len(repo.runs) != 3 {
		t.Errorf("persisted runs = %d, want 3", len(repo.runs))
	}
	if len(pub.sweeps) != 1 {
		t.Errorf("sweep events = %d, want 1", len(pub.sweeps))
	}

	if _, err := svc.RunConvergenceSweep(context.Background(), SweepCommand{Symbol: "TECH"}); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("empty path counts: expected ErrInvalidParameter, got %v", err)
	}
}

func TestQueryServiceFallsBackToRepo(t *testing.T) {
	repo := &memoryRepo{}
	cmdSvc := NewPricingCommandService(repo, nil, nil, nil, nil, 60)
	if _, err := cmdSvc.PriceExotic(context.Background(), validCommand()); err != nil {
		t.Fatalf("PriceExotic: %v", err)
	}

	q := NewPricingQueryService(repo, nil)
	dto, err := q.GetLatest(context.Background(), "TECH")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if dto.Symbol != "TECH" || dto.PathCount != 2000 {
		t.Errorf("unexpected dto: %+v", dto)
	}

	hist, err := q.GetHistory(context.Background(), "TECH", 10)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(hist) != 1 {
		t.Errorf("history length = %d, want 1", len(hist))
	}

	if _, err := q.GetLatest(context.Background(), "NOPE"); !errors.Is(err, domain.ErrValuationNotFound) {
		t.Errorf("expected ErrValuationNotFound, got %v", err)
	}
}
