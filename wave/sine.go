// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package wave

import (
	"math"
	"math/rand"
)

// Sine is a sine wave with a random amplitude and frequency multiplier.
// Its random stream is seeded once and advances twice per Observe, so repeated
// observations on the same Sine differ. Create one per lattice sample.
type Sine struct {
	random *rand.Rand
}

// NewSine creates a Sine whose random stream is seeded by seed.
func NewSine(seed int) *Sine {
	return &Sine{random: rand.New(rand.NewSource(int64(seed)))}
}

// Observe implements Wave.Observe.
func (s *Sine) Observe(distance, maxHeight int, frequency float64) int {
	origin := float64(maxHeight) / 2
	amplitude := s.random.Float64() * origin
	z := amplitude * math.Sin(s.random.Float64()*frequency*float64(distance))
	return clampHeight(z+origin, maxHeight)
}
