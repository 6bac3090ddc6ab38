package domain

import "errors"

// OptionType distinguishes call and put payoffs
type OptionType string

const (
	OptionTypeCall OptionType = "CALL"
	OptionTypePut  OptionType = "PUT"
)

// Valid reports whether the option type is a known value
func (t OptionType) Valid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

// BarrierDirection selects the knock-out side of a barrier option
type BarrierDirection string

const (
	BarrierUpAndOut   BarrierDirection = "UP_AND_OUT"
	BarrierDownAndOut BarrierDirection = "DOWN_AND_OUT"
)

// Valid reports whether the barrier direction is a known value
func (d BarrierDirection) Valid() bool {
	return d == BarrierUpAndOut || d == BarrierDownAndOut
}

var (
	// ErrInvalidParameter indicates a simulation or contract parameter outside its legal range
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyMatrix indicates a path matrix with no paths or no rows
	ErrEmptyMatrix = errors.New("path matrix is empty")
	// ErrRaggedMatrix indicates rows of unequal width
	ErrRaggedMatrix = errors.New("path matrix rows have unequal length")
	// ErrInsufficientData indicates a price series too short to estimate volatility
	ErrInsufficientData = errors.New("insufficient price data")
	// ErrValuationNotFound indicates no persisted valuation matched the query
	ErrValuationNotFound = errors.New("valuation not found")
)
