package maze

import (
	"math/rand"
)

// DefaultBias is the probability of a coin flip landing true.
const DefaultBias = 0.5

// RandomSource supplies the coin flips and random indexes used while carving.
type RandomSource interface {
	// Bool returns the result of a coin flip.
	Bool() bool

	// Int returns a non-negative random integer.
	Int() int
}

// UniformSource is a RandomSource backed by math/rand.
type UniformSource struct {
	rng  *rand.Rand
	bias float64
}

// NewUniformSource returns a source seeded with seed whose coin lands true with probability bias.
// A bias outside [0, 1] falls back to DefaultBias.
func NewUniformSource(seed int64, bias float64) *UniformSource {
	if bias < 0 || bias > 1 {
		bias = DefaultBias
	}
	return &UniformSource{
		rng:  rand.New(rand.NewSource(seed)),
		bias: bias,
	}
}

// Bool implements RandomSource.
func (s *UniformSource) Bool() bool {
	return s.rng.Float64() < s.bias
}

// Int implements RandomSource.
func (s *UniformSource) Int() int {
	return s.rng.Int()
}

// SourceFunc adapts a pair of functions to a RandomSource.
// A nil IntFn always yields 0.
type SourceFunc struct {
	BoolFn func() bool
	IntFn  func() int
}

// Bool implements RandomSource.
func (f SourceFunc) Bool() bool {
	return f.BoolFn()
}

// Int implements RandomSource.
func (f SourceFunc) Int() int {
	if f.IntFn == nil {
		return 0
	}
	return f.IntFn()
}
