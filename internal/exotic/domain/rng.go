package domain

import "math/rand"

// NormalSource supplies standard normal variates for the path simulator.
// Implementations must fill the whole slice or return an error.
type NormalSource interface {
	Normals(out []float64) error
}

// PseudoNormalSource draws from a seeded pseudo random generator.
// The same seed always yields the same draw sequence.
type PseudoNormalSource struct {
	rng *rand.Rand
}

// NewPseudoNormalSource creates a seeded normal source
func NewPseudoNormalSource(seed int64) *PseudoNormalSource {
	return &PseudoNormalSource{rng: rand.New(rand.NewSource(seed))}
}

// Normals fills out with standard normal draws
func (s *PseudoNormalSource) Normals(out []float64) error {
	for i := range out {
		out[i] = s.rng.NormFloat64()
	}
	return nil
}

// FixedNormalSource replays a predetermined sequence of draws, for tests
type FixedNormalSource struct {
	values []float64
	pos    int
	// Err, when set, is returned on the first call instead of values
	Err error
}

// NewFixedNormalSource creates a source that replays values in order
func NewFixedNormalSource(values ...float64) *FixedNormalSource {
	return &FixedNormalSource{values: values}
}

// Normals copies the next len(out) predetermined draws into out
func (s *FixedNormalSource) Normals(out []float64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range out {
		if s.pos >= len(s.values) {
			out[i] = 0
			continue
		}
		out[i] = s.values[s.pos]
		s.pos++
	}
	return nil
}
