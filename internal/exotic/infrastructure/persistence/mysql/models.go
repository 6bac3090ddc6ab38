package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

// ValuationRunModel 估值记录数据库模型
type ValuationRunModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
	Symbol           string    `gorm:"column:symbol;type:varchar(32);index;not null"`
	OptionType       string    `gorm:"column:option_type;type:varchar(8);not null"`
	BarrierDirection string    `gorm:"column:barrier_direction;type:varchar(16);not null"`
	StrikePrice      string    `gorm:"column:strike_price;type:decimal(32,18);not null"`
	BarrierPrice     string    `gorm:"column:barrier_price;type:decimal(32,18);not null"`
	InitialPrice     string    `gorm:"column:initial_price;type:decimal(32,18);not null"`
	RiskFreeRate     string    `gorm:"column:risk_free_rate;type:decimal(32,18);not null"`
	Volatility       string    `gorm:"column:volatility;type:decimal(32,18);not null"`
	Horizon          float64   `gorm:"column:horizon;type:double;not null"`
	StepSize         float64   `gorm:"column:step_size;type:double;not null"`
	PathCount        int       `gorm:"column:path_count;type:int;not null"`
	Seed             int64     `gorm:"column:seed;type:bigint;not null"`
	AsianPrice       string    `gorm:"column:asian_price;type:decimal(32,18);not null"`
	BarrierOutPrice  string    `gorm:"column:barrier_out_price;type:decimal(32,18);not null"`
	ElapsedSeconds   float64   `gorm:"column:elapsed_seconds;type:double;not null"`
	CalculatedAt     int64     `gorm:"column:calculated_at;type:bigint;index;not null"`
}

func (ValuationRunModel) TableName() string { return "valuation_runs" }

// mapping helpers

func toValuationRunModel(run *domain.ValuationRun) *ValuationRunModel {
	if run == nil {
		return nil
	}
	return &ValuationRunModel{
		ID:               run.ID,
		CreatedAt:        run.CreatedAt,
		UpdatedAt:        run.UpdatedAt,
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

func toValuationRun(m *ValuationRunModel) *domain.ValuationRun {
	if m == nil {
		return nil
	}
	return &domain.ValuationRun{
		ID:               m.ID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Symbol:           m.Symbol,
		OptionType:       domain.OptionType(m.OptionType),
		BarrierDirection: domain.BarrierDirection(m.BarrierDirection),
		StrikePrice:      mustDecimal(m.StrikePrice),
		BarrierPrice:     mustDecimal(m.BarrierPrice),
		InitialPrice:     mustDecimal(m.InitialPrice),
		RiskFreeRate:     mustDecimal(m.RiskFreeRate),
		Volatility:       mustDecimal(m.Volatility),
		Horizon:          m.Horizon,
		StepSize:         m.StepSize,
		PathCount:        m.PathCount,
		Seed:             m.Seed,
		AsianPrice:       mustDecimal(m.AsianPrice),
		BarrierOutPrice:  mustDecimal(m.BarrierOutPrice),
		ElapsedSeconds:   m.ElapsedSeconds,
		CalculatedAt:     m.CalculatedAt,
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
