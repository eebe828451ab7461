// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package lattice

import "errors"

var (
	ErrSize      = errors.New("lattice: size must be positive")
	ErrDensity   = errors.New("lattice: density must be positive and finite")
	ErrMaxHeight = errors.New("lattice: max height must not be negative")
	ErrFrequency = errors.New("lattice: frequency must be finite")
)
