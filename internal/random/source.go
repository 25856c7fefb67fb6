// Package random provides the seeded coordinate stream that geometry builders
// draw from. Nothing else in the generator consumes randomness.
package random

import (
	"math/rand/v2"

	"github.com/UnknownOlympus/fixturegen/internal/models"
)

const (
	// Scale is the divisor applied to drawn integers, fixing six decimal digits.
	Scale = 1_000_000
	// MinUnits and MaxUnits bound the drawn integers, giving reals in [-1, 1].
	MinUnits = -Scale
	MaxUnits = Scale

	// streamSalt derives the second PCG word from the seed.
	streamSalt = 0x9e3779b97f4a7c15
)

// Source is a deterministic stream of random integers, reals and coordinates.
type Source interface {
	// IntRange returns an integer uniformly drawn from [lo, hi].
	IntRange(lo, hi int) int
	// Real returns a value in [-1, 1] with six decimal digits.
	Real() float64
	// Coordinate returns (Real(), Real()).
	Coordinate() models.Coordinate
}

// PCGSource is a Source backed by a PCG generator.
type PCGSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed. Equal seeds give equal streams.
func NewSource(seed int64) *PCGSource {
	s := uint64(seed)
	return &PCGSource{rng: rand.New(rand.NewPCG(s, s^streamSalt))}
}

// IntRange returns an integer uniformly drawn from [lo, hi]. It panics if hi < lo.
func (s *PCGSource) IntRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Real returns a value in [-1, 1] with six decimal digits.
func (s *PCGSource) Real() float64 {
	return float64(s.IntRange(MinUnits, MaxUnits)) / Scale
}

// Coordinate returns (Real(), Real()).
func (s *PCGSource) Coordinate() models.Coordinate {
	x := s.Real()
	y := s.Real()

	return models.Coordinate{X: x, Y: y}
}
