// Package generator builds maze grids.
package generator

import (
	"math/rand"

	"crazymaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rows, cols, extraPassages int) *world.Grid
	Name() string
}

// NewDefault returns the default generator driven by rng
func NewDefault(rng *rand.Rand) GridGenerator {
	return NewBacktracker(rng)
}

// MinDimension is the smallest side length a maze can have
const MinDimension = 3

// NormalizeDimension rounds even values up to the next odd value and raises
// anything below MinDimension to MinDimension.
func NormalizeDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}
