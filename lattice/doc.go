// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lattice observes heights in a lattice of waves.
//
// Lattice points are spaced Params.CellSize apart along each axis. To observe (x, y),
// the waves anchored at the lattice points on either side of x are observed at
// distance y and blended by x's smoothed position between them. The same is done
// with the roles of x and y swapped, and the two results are averaged.
//
// Nothing is stored between observations: waves are created per lattice sample and
// seeded by the lattice point's origin, so a Generator is safe for concurrent use and
// rows of a heightmap can be generated in parallel.
package lattice
