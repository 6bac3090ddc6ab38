package domain

import (
	"fmt"
	"math"
)

// SimulationParams describes one geometric Brownian motion simulation
type SimulationParams struct {
	InitialPrice float64 // S0
	Drift        float64 // mu, annualized
	Volatility   float64 // sigma, annualized
	Horizon      float64 // in years
	StepSize     float64 // in years
	PathCount    int
}

// Validate checks all parameters against their legal ranges
func (p SimulationParams) Validate() error {
	if p.InitialPrice <= 0 {
		return fmt.Errorf("%w: initial price must be positive, got %v", ErrInvalidParameter, p.InitialPrice)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, p.Volatility)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %v", ErrInvalidParameter, p.Horizon)
	}
	if p.StepSize <= 0 {
		return fmt.Errorf("%w: step size must be positive, got %v", ErrInvalidParameter, p.StepSize)
	}
	if p.PathCount < 1 {
		return fmt.Errorf("%w: path count must be at least 1, got %d", ErrInvalidParameter, p.PathCount)
	}
	return nil
}

// Steps derives the number of time steps from horizon and step size.
// 步数按四舍五入取整，至少为 1.
func (p SimulationParams) Steps() int {
	steps := int(math.Round(p.Horizon / p.StepSize))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// PathMatrix holds simulated prices in a flat row-major buffer.
// Row i holds the price of every path at time step i; row 0 is the
// initial price. The matrix is immutable once built.
type PathMatrix struct {
	data  []float64
	rows  int
	paths int
}

// Rows returns the number of time rows, steps+1
func (m *PathMatrix) Rows() int { return m.rows }

// Paths returns the number of simulated paths
func (m *PathMatrix) Paths() int { return m.paths }

// Steps returns the number of time steps
func (m *PathMatrix) Steps() int { return m.rows - 1 }

// At returns the price of path j at time row i
func (m *PathMatrix) At(i, j int) float64 { return m.data[i*m.paths+j] }

// Final returns the terminal price of path j
func (m *PathMatrix) Final(j int) float64 { return m.data[(m.rows-1)*m.paths+j] }

// NewPathMatrixFromRows builds a matrix from explicit rows, for tests
// and replays. All rows must be non-empty and of equal length.
func NewPathMatrixFromRows(rows [][]float64) (*PathMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	paths := len(rows[0])
	data := make([]float64, 0, len(rows)*paths)
	for _, row := range rows {
		if len(row) != paths {
			return nil, ErrRaggedMatrix
		}
		data = append(data, row...)
	}
	return &PathMatrix{data: data, rows: len(rows), paths: paths}, nil
}

// SimulatePaths runs a geometric Brownian motion simulation using the
// exact discretization of the GBM solution. Normal draws are consumed
// one row at a time, path by path, so a seeded source reproduces the
// exact same matrix for the same parameters.
func SimulatePaths(p SimulationParams, src NormalSource) (*PathMatrix, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: normal source is nil", ErrInvalidParameter)
	}

	steps := p.Steps()
	dt := p.Horizon / float64(steps)
	rows := steps + 1

	data := make([]float64, rows*p.PathCount)
	for j := 0; j < p.PathCount; j++ {
		data[j] = p.InitialPrice
	}

	drift := (p.Drift - 0.5*p.Volatility*p.Volatility) * dt
	diffusion := p.Volatility * math.Sqrt(dt)

	draws := make([]float64, p.PathCount)
	for i := 1; i < rows; i++ {
		if err := src.Normals(draws); err != nil {
			return nil, fmt.Errorf("drawing normals for step %d: %w", i, err)
		}
		prev := data[(i-1)*p.PathCount:]
		cur := data[i*p.PathCount:]
		for j := 0; j < p.PathCount; j++ {
			cur[j] = prev[j] * math.Exp(drift+diffusion*draws[j])
		}
	}

	return &PathMatrix{data: data, rows: rows, paths: p.PathCount}, nil
}
