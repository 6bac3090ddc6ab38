package domain

import "testing"

// Reference scenario shared by the statistical checks below.
var refParams = SimulationParams{
	InitialPrice: 100,
	Drift:        0.055,
	Volatility:   0.2,
	Horizon:      1,
	StepSize:     1.0 / 252,
	PathCount:    50000,
}

func TestMonteCarloReferenceScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large simulation in short mode")
	}

	m, err := SimulatePaths(refParams, NewPseudoNormalSource(20260830))
	if err != nil {
		t.Fatalf("SimulatePaths: %v", err)
	}

	asian, err := AsianOptionValue(m, OptionTypeCall, 105, refParams.Drift, refParams.Horizon)
	if err != nil {
		t.Fatalf("AsianOptionValue: %v", err)
	}
	if asian < 2.5 || asian > 5.0 {
		t.Errorf("asian call price = %v, outside plausibility band [2.5, 5.0]", asian)
	}

	barrier, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 150, refParams.Drift, refParams.Horizon)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if barrier < 3.0 || barrier > 8.0 {
		t.Errorf("barrier call price = %v, outside plausibility band [3.0, 8.0]", barrier)
	}

	// A barrier just above the strike knocks out nearly every in-the-money
	// path, leaving only a sliver of value.
	tight, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 110, refParams.Drift, refParams.Horizon)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if tight < 0.01 || tight > 0.12 {
		t.Errorf("tight barrier call price = %v, outside plausibility band [0.01, 0.12]", tight)
	}
	if tight >= barrier {
		t.Errorf("tight barrier price %v should be below wide barrier price %v", tight, barrier)
	}

	// The knock out option is worth no more than keeping every path alive.
	vanillaLike, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 1e9, refParams.Drift, refParams.Horizon)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if barrier > vanillaLike {
		t.Errorf("knock out price %v exceeds unconstrained price %v", barrier, vanillaLike)
	}
}

func TestMonteCarloPricingReproducible(t *testing.T) {
	p := refParams
	p.PathCount = 5000

	price := func(seed int64) float64 {
		m, err := SimulatePaths(p, NewPseudoNormalSource(seed))
		if err != nil {
			t.Fatalf("SimulatePaths: %v", err)
		}
		v, err := AsianOptionValue(m, OptionTypeCall, 105, p.Drift, p.Horizon)
		if err != nil {
			t.Fatalf("AsianOptionValue: %v", err)
		}
		return v
	}

	if a, b := price(99), price(99); a != b {
		t.Errorf("same seed produced different prices: %v vs %v", a, b)
	}

	a, b := price(99), price(100)
	if !almostEqual(a, b, 0.5) {
		t.Errorf("independent seeds disagree too much: %v vs %v", a, b)
	}
}

func TestMonteCarloConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence study in short mode")
	}

	estimate := func(paths int, seed int64) float64 {
		p := refParams
		p.PathCount = paths
		m, err := SimulatePaths(p, NewPseudoNormalSource(seed))
		if err != nil {
			t.Fatalf("SimulatePaths: %v", err)
		}
		v, err := AsianOptionValue(m, OptionTypeCall, 105, p.Drift, p.Horizon)
		if err != nil {
			t.Fatalf("AsianOptionValue: %v", err)
		}
		return v
	}

	variance := func(paths int) float64 {
		const reps = 8
		var vals [reps]float64
		var mean float64
		for i := 0; i < reps; i++ {
			vals[i] = estimate(paths, int64(1000+i))
			mean += vals[i]
		}
		mean /= reps
		var ss float64
		for _, v := range vals {
			d := v - mean
			ss += d * d
		}
		return ss / (reps - 1)
	}

	small := variance(500)
	large := variance(8000)
	if large >= small {
		t.Errorf("estimator variance did not shrink with more paths: var(500)=%v var(8000)=%v", small, large)
	}
}
