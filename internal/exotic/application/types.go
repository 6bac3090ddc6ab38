package application

// PriceExoticCommand 奇异期权估值命令
type PriceExoticCommand struct {
	Symbol           string  `json:"symbol"`
	OptionType       string  `json:"option_type"`
	BarrierDirection string  `json:"barrier_direction"`
	StrikePrice      float64 `json:"strike_price"`
	BarrierPrice     float64 `json:"barrier_price"`
	// InitialPrice 为 0 时从行情服务获取最新价格
	InitialPrice float64 `json:"initial_price"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	// Volatility 为 0 时根据历史收盘价估计年化波动率
	Volatility float64 `json:"volatility"`
	Horizon    float64 `json:"horizon"`
	StepSize   float64 `json:"step_size"`
	PathCount  int     `json:"path_count"`
	// Seed 为 0 时使用当前时间作为随机种子
	Seed int64 `json:"seed"`
}

// SweepCommand 收敛性扫描命令
type SweepCommand struct {
	Symbol           string  `json:"symbol"`
	OptionType       string  `json:"option_type"`
	BarrierDirection string  `json:"barrier_direction"`
	StrikePrice      float64 `json:"strike_price"`
	BarrierPrice     float64 `json:"barrier_price"`
	InitialPrice     float64 `json:"initial_price"`
	RiskFreeRate     float64 `json:"risk_free_rate"`
	Volatility       float64 `json:"volatility"`
	Horizon          float64 `json:"horizon"`
	StepSize         float64 `json:"step_size"`
	PathCounts       []int   `json:"path_counts"`
	Seed             int64   `json:"seed"`
}

// ValuationDTO 估值结果传输对象
type ValuationDTO struct {
	ID               uint    `json:"id"`
	Symbol           string  `json:"symbol"`
	OptionType       string  `json:"option_type"`
	BarrierDirection string  `json:"barrier_direction"`
	StrikePrice      string  `json:"strike_price"`
	BarrierPrice     string  `json:"barrier_price"`
	InitialPrice     string  `json:"initial_price"`
	RiskFreeRate     string  `json:"risk_free_rate"`
	Volatility       string  `json:"volatility"`
	Horizon          float64 `json:"horizon"`
	StepSize         float64 `json:"step_size"`
	PathCount        int     `json:"path_count"`
	Seed             int64   `json:"seed"`
	AsianPrice       string  `json:"asian_price"`
	BarrierOutPrice  string  `json:"barrier_out_price"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
	CalculatedAt     int64   `json:"calculated_at"`
}

// SweepRecordDTO 单个路径数的扫描结果
type SweepRecordDTO struct {
	PathCount      int     `json:"path_count"`
	AsianPrice     float64 `json:"asian_price"`
	BarrierPrice   float64 `json:"barrier_price"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
