package domain

import (
	"fmt"
	"math"
)

// BarrierOptionValue prices a knock-out barrier option on a simulated
// path matrix. A path is knocked out only when a price strictly
// crosses the barrier; touching the barrier exactly keeps the path
// alive. Knocked out paths contribute zero. Surviving paths pay the
// vanilla payoff on the terminal price, discounted at the risk free
// rate over the horizon.
func BarrierOptionValue(m *PathMatrix, optType OptionType, dir BarrierDirection, strike, barrier, riskFreeRate, horizon float64) (float64, error) {
	if m == nil || m.Rows() == 0 || m.Paths() == 0 {
		return 0, ErrEmptyMatrix
	}
	if !optType.Valid() {
		return 0, fmt.Errorf("%w: unknown option type %q", ErrInvalidParameter, optType)
	}
	if !dir.Valid() {
		return 0, fmt.Errorf("%w: unknown barrier direction %q", ErrInvalidParameter, dir)
	}
	if strike <= 0 {
		return 0, fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, strike)
	}
	if barrier <= 0 {
		return 0, fmt.Errorf("%w: barrier must be positive, got %v", ErrInvalidParameter, barrier)
	}

	discount := math.Exp(-riskFreeRate * horizon)

	var sum float64
	for j := 0; j < m.Paths(); j++ {
		knocked := false
		for i := 0; i < m.Rows(); i++ {
			price := m.At(i, j)
			// 严格不等式：恰好触及障碍价不敲出.
			if (dir == BarrierUpAndOut && price > barrier) ||
				(dir == BarrierDownAndOut && price < barrier) {
				knocked = true
				break
			}
		}
		if knocked {
			continue
		}

		final := m.Final(j)
		var payoff float64
		if optType == OptionTypeCall {
			payoff = math.Max(final-strike, 0)
		} else {
			payoff = math.Max(strike-final, 0)
		}
		sum += payoff * discount
	}

	return sum / float64(m.Paths()), nil
}
