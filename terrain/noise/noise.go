// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"context"
	"fmt"
	"runtime"

	"github.com/SoftbearStudios/wavenoise/lattice"
	"github.com/SoftbearStudios/wavenoise/wave"
	"golang.org/x/sync/errgroup"
)

// Options configure a Generator.
type Options struct {
	Wave   wave.Kind      `json:"wave"`
	Params lattice.Params `json:"params"`
	// Offset of the origin of the heightmap in lattice space.
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	// Workers is the maximum number of rows generated in parallel.
	// Defaults to runtime.GOMAXPROCS.
	Workers int `json:"-"`
}

// Generator generates a heightmap by observing a lattice noise generator.
type Generator struct {
	lattice *lattice.Generator
	options Options
}

// New validates the options and creates a Generator.
func New(options Options) (*Generator, error) {
	factory := options.Wave.Factory()
	if factory == nil {
		return nil, fmt.Errorf("unknown wave %q", options.Wave)
	}
	if err := options.Params.Validate(); err != nil {
		return nil, err
	}
	if options.Params.MaxHeight > 255 {
		return nil, fmt.Errorf("max height %d does not fit in a byte", options.Params.MaxHeight)
	}
	if options.Workers <= 0 {
		options.Workers = runtime.GOMAXPROCS(0)
	}

	return &Generator{
		lattice: lattice.New(factory),
		options: options,
	}, nil
}

// Options returns the options g was created with.
func (g *Generator) Options() Options {
	return g.options
}

// Generate implements terrain.Source.Generate.
func (g *Generator) Generate(px, py, width, height int) []byte {
	// Background is never done, so GenerateContext can't fail
	buf, _ := g.GenerateContext(context.Background(), px, py, width, height)
	return buf
}

// GenerateContext is like Generate but spreads rows across workers and stops early
// if ctx is done.
func (g *Generator) GenerateContext(ctx context.Context, px, py, width, height int) ([]byte, error) {
	buf := make([]byte, width*height)

	// Offsets in lattice space
	offX := g.options.OffsetX + px
	offY := g.options.OffsetY + py

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.options.Workers)

	for j := 0; j < height; j++ {
		j := j
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			row := buf[j*width : (j+1)*width]
			for i := range row {
				row[i] = clampToByte(g.lattice.ObserveUnchecked(offX+i, offY+j, g.options.Params))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	// groupCtx is always done after Wait, so check the caller's
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
