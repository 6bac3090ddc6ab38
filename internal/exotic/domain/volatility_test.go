package domain

import (
	"errors"
	"math"
	"testing"
)

func TestAnnualizedVolatilityConstantReturns(t *testing.T) {
	// Identical daily returns have zero sample variance.
	closes := []float64{100, 110, 121, 133.1}
	got, err := AnnualizedVolatility(closes)
	if err != nil {
		t.Fatalf("AnnualizedVolatility: %v", err)
	}
	if !almostEqual(got, 0, 1e-12) {
		t.Errorf("volatility = %v, want 0 for constant returns", got)
	}
}

func TestAnnualizedVolatilityHandComputed(t *testing.T) {
	// Returns are +10% and -1/11; the sample variance over two points
	// is twice the squared deviation from their mean.
	closes := []float64{100, 110, 100}
	r1, r2 := 0.1, -1.0/11.0
	mean := (r1 + r2) / 2
	d := r1 - mean
	want := math.Sqrt(2*d*d) * math.Sqrt(TradingDaysPerYear)

	got, err := AnnualizedVolatility(closes)
	if err != nil {
		t.Fatalf("AnnualizedVolatility: %v", err)
	}
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("volatility = %v, want %v", got, want)
	}
}

func TestAnnualizedVolatilityScalesWithSpread(t *testing.T) {
	calm := []float64{100, 101, 100, 101, 100, 101}
	wild := []float64{100, 110, 95, 112, 90, 115}

	calmVol, err := AnnualizedVolatility(calm)
	if err != nil {
		t.Fatalf("calm series: %v", err)
	}
	wildVol, err := AnnualizedVolatility(wild)
	if err != nil {
		t.Fatalf("wild series: %v", err)
	}
	if wildVol <= calmVol {
		t.Errorf("wild vol %v should exceed calm vol %v", wildVol, calmVol)
	}
}

func TestAnnualizedVolatilityInsufficientData(t *testing.T) {
	for _, closes := range [][]float64{nil, {100}, {100, 101}} {
		if _, err := AnnualizedVolatility(closes); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("closes=%v: expected ErrInsufficientData, got %v", closes, err)
		}
	}
}

func TestAnnualizedVolatilityNonPositivePrice(t *testing.T) {
	if _, err := AnnualizedVolatility([]float64{100, 0, 101}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for non-positive close, got %v", err)
	}
}
