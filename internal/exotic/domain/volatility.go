package domain

import "math"

// TradingDaysPerYear is the annualization factor for daily returns
const TradingDaysPerYear = 252

// AnnualizedVolatility estimates annualized volatility from a series
// of daily closing prices. It computes simple percentage returns,
// takes their sample standard deviation and scales by the square root
// of the trading day count. At least three closes are required so the
// sample variance is well defined.
func AnnualizedVolatility(closes []float64) (float64, error) {
	if len(closes) < 3 {
		return 0, ErrInsufficientData
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 {
			return 0, ErrInsufficientData
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var ss float64
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	variance := ss / float64(len(returns)-1)

	return math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear), nil
}
