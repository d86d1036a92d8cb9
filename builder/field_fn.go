// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// field_fn.go — scalar fields sampled at the embedded vertices.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is a vertex position in R³.
type Point [3]float64

// ScalarFn produces the value of vertex i at position p. Stochastic fields
// draw from rng and must return an error when it is nil.
type ScalarFn func(p Point, i int, rng *rand.Rand) (float64, error)

// DistanceFn returns the Euclidean distance from origin.
// Complexity: O(1).
func DistanceFn(origin Point) ScalarFn {
	return func(p Point, _ int, _ *rand.Rand) (float64, error) {
		dx, dy, dz := p[0]-origin[0], p[1]-origin[1], p[2]-origin[2]
		return math.Sqrt(dx*dx + dy*dy + dz*dz), nil
	}
}

// HeightFn returns coordinate axis (0 = x, 1 = y, 2 = z) of the position.
// Panics if axis is outside [0,2].
func HeightFn(axis int) ScalarFn {
	if axis < 0 || axis > 2 {
		panic(fmt.Sprintf("builder: HeightFn(axis=%d)", axis))
	}
	return func(p Point, _ int, _ *rand.Rand) (float64, error) {
		return p[axis], nil
	}
}

// WaveFn returns sin(freq*x) + sin(freq*y) + sin(freq*z), a field with many
// extrema. Panics if freq <= 0.
func WaveFn(freq float64) ScalarFn {
	if freq <= 0 {
		panic("builder: WaveFn(freq<=0)")
	}
	return func(p Point, _ int, _ *rand.Rand) (float64, error) {
		return math.Sin(freq*p[0]) + math.Sin(freq*p[1]) + math.Sin(freq*p[2]), nil
	}
}

// RandomFn returns uniform noise in [0,1), drawn in vertex index order.
func RandomFn() ScalarFn {
	return func(_ Point, i int, rng *rand.Rand) (float64, error) {
		if rng == nil {
			return 0, fmt.Errorf("vertex %d: %w", i, ErrNeedRandSource)
		}
		return rng.Float64(), nil
	}
}
