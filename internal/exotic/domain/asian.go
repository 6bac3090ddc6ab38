package domain

import (
	"fmt"
	"math"
)

// AsianOptionValue prices an arithmetic average-price Asian option on a
// simulated path matrix. The average runs over every row of the path,
// including the initial price row. Each path payoff is discounted at
// the risk free rate over the horizon and the result is the mean over
// all paths.
func AsianOptionValue(m *PathMatrix, optType OptionType, strike, riskFreeRate, horizon float64) (float64, error) {
	if m == nil || m.Rows() == 0 || m.Paths() == 0 {
		return 0, ErrEmptyMatrix
	}
	if !optType.Valid() {
		return 0, fmt.Errorf("%w: unknown option type %q", ErrInvalidParameter, optType)
	}
	if strike <= 0 {
		return 0, fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, strike)
	}

	discount := math.Exp(-riskFreeRate * horizon)
	rows := float64(m.Rows())

	var sum float64
	for j := 0; j < m.Paths(); j++ {
		var pathSum float64
		for i := 0; i < m.Rows(); i++ {
			pathSum += m.At(i, j)
		}
		avg := pathSum / rows

		var payoff float64
		if optType == OptionTypeCall {
			payoff = math.Max(avg-strike, 0)
		} else {
			payoff = math.Max(strike-avg, 0)
		}
		sum += payoff * discount
	}

	return sum / float64(m.Paths()), nil
}
