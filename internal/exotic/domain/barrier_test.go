package domain

import (
	"errors"
	"math"
	"testing"
)

func TestBarrierOptionValueUpAndOutSurvives(t *testing.T) {
	// Path stays strictly below the barrier, so the vanilla terminal
	// payoff applies.
	m := mustMatrix(t, [][]float64{{100}, {115}, {118}})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 120, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if !almostEqual(got, 13, 1e-12) {
		t.Errorf("call value = %v, want 13", got)
	}
}

func TestBarrierOptionValueTouchDoesNotKnockOut(t *testing.T) {
	// Touching the barrier exactly keeps the path alive.
	m := mustMatrix(t, [][]float64{{100}, {120}, {110}})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 120, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if !almostEqual(got, 5, 1e-12) {
		t.Errorf("call value = %v, want 5 (exact touch must not knock out)", got)
	}
}

func TestBarrierOptionValueStrictBreachKnocksOut(t *testing.T) {
	m := mustMatrix(t, [][]float64{{100}, {120.0001}, {110}})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 120, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if got != 0 {
		t.Errorf("call value = %v, want 0 for a breached path", got)
	}
}

func TestBarrierOptionValueDownAndOut(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{100, 100},
		{80, 95},
		{110, 112},
	})

	// Path 0 dips strictly below the barrier and is knocked out.
	// Path 1 survives and pays 7 at expiry.
	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierDownAndOut, 105, 90, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if !almostEqual(got, 3.5, 1e-12) {
		t.Errorf("call value = %v, want 3.5", got)
	}
}

func TestBarrierOptionValueDownAndOutTouch(t *testing.T) {
	m := mustMatrix(t, [][]float64{{100}, {90}, {112}})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierDownAndOut, 105, 90, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if !almostEqual(got, 7, 1e-12) {
		t.Errorf("call value = %v, want 7 (exact touch must not knock out)", got)
	}
}

func TestBarrierOptionValueTerminalPayoffOnly(t *testing.T) {
	// The intermediate maximum is irrelevant for a surviving path, only
	// the terminal price enters the payoff.
	m := mustMatrix(t, [][]float64{{100}, {119}, {102}})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 120, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if got != 0 {
		t.Errorf("call value = %v, want 0 (terminal price below strike)", got)
	}
}

func TestBarrierOptionValuePut(t *testing.T) {
	m := mustMatrix(t, [][]float64{{100}, {95}, {92}})

	got, err := BarrierOptionValue(m, OptionTypePut, BarrierDownAndOut, 105, 90, 0.05, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	want := 13 * math.Exp(-0.05)
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("put value = %v, want %v", got, want)
	}
}

func TestBarrierOptionValueInvalidInput(t *testing.T) {
	m := mustMatrix(t, [][]float64{{100}, {110}})

	if _, err := BarrierOptionValue(nil, OptionTypeCall, BarrierUpAndOut, 100, 120, 0, 1); !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("nil matrix: expected ErrEmptyMatrix, got %v", err)
	}
	if _, err := BarrierOptionValue(m, OptionTypeCall, BarrierDirection("IN"), 100, 120, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("bad direction: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 100, 0, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero barrier: expected ErrInvalidParameter, got %v", err)
	}
}

func TestBarrierOptionValueAllKnockedOut(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{100, 100},
		{130, 140},
		{110, 112},
	})

	got, err := BarrierOptionValue(m, OptionTypeCall, BarrierUpAndOut, 105, 120, 0, 1)
	if err != nil {
		t.Fatalf("BarrierOptionValue: %v", err)
	}
	if got != 0 {
		t.Errorf("call value = %v, want 0 when every path is knocked out", got)
	}
}
