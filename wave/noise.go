// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package wave

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Perlin is 1D perlin noise seeded by its lattice point.
type Perlin struct {
	noise *perlin.Perlin
}

func NewPerlin(seed int) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed))}
}

// Observe implements Wave.Observe.
func (p *Perlin) Observe(distance, maxHeight int, frequency float64) int {
	// Noise1D is roughly in [-1, 1]
	n := p.noise.Noise1D(float64(distance) * frequency)
	origin := float64(maxHeight) / 2
	return clampHeight(origin+n*origin, maxHeight)
}

// Simplex is a line through 2D OpenSimplex noise seeded by its lattice point.
type Simplex struct {
	noise opensimplex.Noise
}

func NewSimplex(seed int) *Simplex {
	return &Simplex{noise: opensimplex.New(int64(seed))}
}

// Observe implements Wave.Observe.
func (s *Simplex) Observe(distance, maxHeight int, frequency float64) int {
	n := s.noise.Eval2(float64(distance)*frequency, 0)
	origin := float64(maxHeight) / 2
	return clampHeight(origin+n*origin, maxHeight)
}
