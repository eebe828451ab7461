// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package wave

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// shape is a stateless wave whose amplitude and frequency multiplier are derived from
// a hash of its seed. Unlike Sine, observing it twice gives the same result.
type shape struct {
	amplitude  float64 // [0, 1)
	multiplier float64 // [0, 1)
	fn         func(phase float64) float64
}

// Triangle is a triangle wave.
type Triangle struct {
	shape
}

// Square is a square wave.
type Square struct {
	shape
}

func NewTriangle(seed int) *Triangle {
	return &Triangle{newShape(seed, triangle)}
}

func NewSquare(seed int) *Square {
	return &Square{newShape(seed, square)}
}

func newShape(seed int, fn func(float64) float64) shape {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(seed)))
	h := xxhash.Sum64(buf[:])

	return shape{
		amplitude:  unitFloat(uint32(h)),
		multiplier: unitFloat(uint32(h >> 32)),
		fn:         fn,
	}
}

// Observe implements Wave.Observe.
func (s shape) Observe(distance, maxHeight int, frequency float64) int {
	origin := float64(maxHeight) / 2
	z := s.amplitude * origin * s.fn(s.multiplier*frequency*float64(distance))
	return clampHeight(z+origin, maxHeight)
}

// unitFloat maps u to [0, 1).
func unitFloat(u uint32) float64 {
	return float64(u) / (1 << 32)
}

// triangle has the same period and range as math.Sin.
func triangle(phase float64) float64 {
	return math.Asin(math.Sin(phase)) * (2 / math.Pi)
}

func square(phase float64) float64 {
	if math.Sin(phase) < 0 {
		return -1
	}
	return 1
}
