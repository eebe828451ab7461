// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package wave

import (
	"fmt"
	"strings"
)

// Wave is a periodic wave anchored at a lattice point.
type Wave interface {
	// Observe returns the height of the wave, between 0 and maxHeight, at distance from
	// the wave's origin. frequency describes the distance between wave apexes.
	Observe(distance, maxHeight int, frequency float64) int
}

// Factory creates a Wave anchored at a lattice point.
// The seed is the lattice point's origin coordinate.
type Factory func(seed int) Wave

// Kind names one of the built-in Wave implementations.
type Kind string

const (
	KindSine     = Kind("sine")
	KindTriangle = Kind("triangle")
	KindSquare   = Kind("square")
	KindPerlin   = Kind("perlin")
	KindSimplex  = Kind("simplex")
)

var kinds = []Kind{KindSine, KindTriangle, KindSquare, KindPerlin, KindSimplex}

// Kinds returns all built-in kinds.
func Kinds() []Kind {
	k := make([]Kind, len(kinds))
	copy(k, kinds)
	return k
}

// ParseKind parses a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown wave %q (expected one of %s)", s, strings.Join(kindNames(), ", "))
}

// Factory returns the constructor for the kind, or nil if kind isn't built-in.
func (kind Kind) Factory() Factory {
	switch kind {
	case KindSine:
		return func(seed int) Wave { return NewSine(seed) }
	case KindTriangle:
		return func(seed int) Wave { return NewTriangle(seed) }
	case KindSquare:
		return func(seed int) Wave { return NewSquare(seed) }
	case KindPerlin:
		return func(seed int) Wave { return NewPerlin(seed) }
	case KindSimplex:
		return func(seed int) Wave { return NewSimplex(seed) }
	default:
		return nil
	}
}

func (kind Kind) String() string {
	return string(kind)
}

func kindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// clampHeight truncates f towards zero and clamps it to [0, maxHeight].
func clampHeight(f float64, maxHeight int) int {
	if f < 0 {
		return 0
	}
	if f > float64(maxHeight) {
		return maxHeight
	}
	return int(f)
}
