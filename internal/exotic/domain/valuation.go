package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationRun 一次奇异期权蒙特卡洛估值记录
type ValuationRun struct {
	ID               uint             `json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Symbol           string           `json:"symbol"`
	OptionType       OptionType       `json:"option_type"`
	BarrierDirection BarrierDirection `json:"barrier_direction"`
	StrikePrice      decimal.Decimal  `json:"strike_price"`
	BarrierPrice     decimal.Decimal  `json:"barrier_price"`
	InitialPrice     decimal.Decimal  `json:"initial_price"`
	RiskFreeRate     decimal.Decimal  `json:"risk_free_rate"`
	Volatility       decimal.Decimal  `json:"volatility"`
	Horizon          float64          `json:"horizon"`
	StepSize         float64          `json:"step_size"`
	PathCount        int              `json:"path_count"`
	Seed             int64            `json:"seed"`
	AsianPrice       decimal.Decimal  `json:"asian_price"`
	BarrierOutPrice  decimal.Decimal  `json:"barrier_out_price"`
	ElapsedSeconds   float64          `json:"elapsed_seconds"`
	CalculatedAt     int64            `json:"calculated_at"`
}
