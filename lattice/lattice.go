// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package lattice

import (
	"math"

	"github.com/SoftbearStudios/wavenoise/wave"
)

// Generator observes heights in a lattice of waves.
// Each lattice point gets a new wave from the factory, seeded by its origin, so
// observations are reproducible and a Generator can be used concurrently.
type Generator struct {
	factory wave.Factory
}

// New creates a Generator that anchors waves made by factory at each lattice point.
func New(factory wave.Factory) *Generator {
	return &Generator{factory: factory}
}

// Observe returns the height, between 0 and params.MaxHeight, at x and y.
// It is the average of interpolating along x (with y as the wave distance) and
// interpolating along y (with x as the wave distance).
func (g *Generator) Observe(x, y int, params Params) (int, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	return g.ObserveUnchecked(x, y, params), nil
}

// ObserveUnchecked is Observe without validation. params must be valid.
func (g *Generator) ObserveUnchecked(x, y int, params Params) int {
	cellSize := params.CellSize()
	vertical := g.interpolate(x, y, params.MaxHeight, cellSize, params.Frequency)
	horizontal := g.interpolate(y, x, params.MaxHeight, cellSize, params.Frequency)
	return int((vertical + horizontal) / 2)
}

// interpolate observes the two waves anchored at the lattice points on either side of
// coord at distance, and blends them by coord's smoothed position between them.
func (g *Generator) interpolate(coord, distance, maxHeight int, cellSize, frequency float64) float64 {
	cell := float64(coord) / cellSize
	leftOrigin := math.Floor(cell) * cellSize
	rightOrigin := math.Ceil(cell) * cellSize

	t := Smooth((float64(coord) - leftOrigin) / cellSize)

	left := float64(g.factory(int(leftOrigin)).Observe(distance, maxHeight, frequency))
	right := float64(g.factory(int(rightOrigin)).Observe(distance, maxHeight, frequency))

	return left + (right-left)*t
}

// Smooth eases the approach towards a lattice point, so heights aren't observed at
// exactly 0 or 1 unperturbed. e.g. 0.9 => 0.98, 0.1 => 0.02.
// It is point symmetric about (0.5, 0.5).
func Smooth(t float64) float64 {
	return (1-math.Abs(t-0.5))*(2-math.SmallestNonzeroFloat64)*(t-0.5) + 0.5
}
