package domain

import "time"

const (
	ExoticOptionPricedEventType   = "ExoticOptionPriced"
	ConvergenceSweepDoneEventType = "ConvergenceSweepDone"
	VolatilityEstimatedEventType  = "VolatilityEstimated"
)

// ExoticOptionPricedEvent 奇异期权估值完成事件
type ExoticOptionPricedEvent struct {
	Symbol           string           `json:"symbol"`
	OptionType       OptionType       `json:"option_type"`
	BarrierDirection BarrierDirection `json:"barrier_direction"`
	StrikePrice      float64          `json:"strike_price"`
	BarrierPrice     float64          `json:"barrier_price"`
	InitialPrice     float64          `json:"initial_price"`
	RiskFreeRate     float64          `json:"risk_free_rate"`
	Volatility       float64          `json:"volatility"`
	Horizon          float64          `json:"horizon"`
	PathCount        int              `json:"path_count"`
	Seed             int64            `json:"seed"`
	AsianPrice       float64          `json:"asian_price"`
	BarrierOutPrice  float64          `json:"barrier_out_price"`
	ElapsedSeconds   float64          `json:"elapsed_seconds"`
	CalculatedAt     int64            `json:"calculated_at"`
	OccurredOn       time.Time        `json:"occurred_on"`
}

// ConvergenceSweepDoneEvent 收敛性扫描完成事件
type ConvergenceSweepDoneEvent struct {
	Symbol     string    `json:"symbol"`
	PathCounts []int     `json:"path_counts"`
	Seed       int64     `json:"seed"`
	OccurredOn time.Time `json:"occurred_on"`
}

// VolatilityEstimatedEvent 波动率估计完成事件
type VolatilityEstimatedEvent struct {
	Symbol       string    `json:"symbol"`
	Volatility   float64   `json:"volatility"`
	LookbackDays int       `json:"lookback_days"`
	OccurredOn   time.Time `json:"occurred_on"`
}
