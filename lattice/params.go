// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package lattice

import (
	"fmt"
	"math"
)

// Params are the per-observation parameters of a Generator.
type Params struct {
	// Size is the hypothetical size of the region in which lattice points are defined.
	Size int `json:"size"`
	// MaxHeight is the largest height that can be observed.
	MaxHeight int `json:"maxHeight"`
	// Density is the fraction of Size between two lattice points.
	// Density > 1 is allowed and results in a single oversized cell.
	Density float64 `json:"density"`
	// Frequency describes the distance between wave apexes.
	Frequency float64 `json:"frequency"`
}

// CellSize is the distance between two neighboring lattice points.
func (p Params) CellSize() float64 {
	return float64(p.Size) * p.Density
}

// Validate returns a domain error if p would produce a degenerate lattice.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrSize, p.Size)
	}
	if !(p.Density > 0) || math.IsInf(p.Density, 0) {
		return fmt.Errorf("%w: %v", ErrDensity, p.Density)
	}
	if p.MaxHeight < 0 {
		return fmt.Errorf("%w: %d", ErrMaxHeight, p.MaxHeight)
	}
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("%w: %v", ErrFrequency, p.Frequency)
	}
	return nil
}
