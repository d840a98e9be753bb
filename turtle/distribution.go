package turtle

import (
	"fmt"

	"pgregory.net/rand"
)

// Distribution draws an integer from rng. Implementations keep no state
// between calls.
type Distribution interface {
	Sample(rng *rand.Rand) int
}

// Constant always samples to itself.
type Constant int

func (c Constant) Sample(*rand.Rand) int {
	return int(c)
}

// Uniform samples uniformly from [lower, upper).
type Uniform struct {
	lower, upper int
}

// NewUniform fails with ErrInvalidRange unless lower < upper.
func NewUniform(lower, upper int) (Uniform, error) {
	if lower >= upper {
		return Uniform{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, lower, upper)
	}
	return Uniform{lower: lower, upper: upper}, nil
}

// Sample works on the unsigned width of the range, which cannot overflow
// even for [math.MinInt, math.MaxInt).
func (u Uniform) Sample(rng *rand.Rand) int {
	width := uint64(u.upper) - uint64(u.lower)
	return int(uint64(u.lower) + rng.Uint64n(width))
}

func (u Uniform) Bounds() (lower, upper int) {
	return u.lower, u.upper
}
