// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/SoftbearStudios/wavenoise/lattice"
	"github.com/SoftbearStudios/wavenoise/terrain"
	"github.com/SoftbearStudios/wavenoise/wave"
)

var testOptions = Options{
	Wave:    wave.KindSine,
	Params:  lattice.Params{Size: 64, MaxHeight: 255, Density: 0.2, Frequency: 0.25},
	OffsetX: 1000,
	OffsetY: -300,
}

var _ terrain.Source = (*Generator)(nil)

func TestGenerator_Generate(t *testing.T) {
	g, err := New(testOptions)
	if err != nil {
		t.Fatal(err)
	}

	const width, height = 24, 17
	buf := g.Generate(5, 7, width, height)

	if len(buf) != width*height {
		t.Fatalf("expected %d heights, got %d", width*height, len(buf))
	}

	l := lattice.New(wave.KindSine.Factory())
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			expected, err := l.Observe(testOptions.OffsetX+5+i, testOptions.OffsetY+7+j, testOptions.Params)
			if err != nil {
				t.Fatal(err)
			}
			if h := buf[i+j*width]; int(h) != expected {
				t.Errorf("height at (%d, %d) expected %d, got %d", i, j, expected, h)
			}
		}
	}
}

func TestGenerator_Workers(t *testing.T) {
	serial := testOptions
	serial.Workers = 1
	parallel := testOptions
	parallel.Workers = 8

	a, err := New(serial)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(parallel)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.Generate(0, 0, 64, 64), b.Generate(0, 0, 64, 64)) {
		t.Error("parallel generation differs from serial generation")
	}
}

func TestGenerator_GenerateContext_Canceled(t *testing.T) {
	g, err := New(testOptions)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.GenerateContext(ctx, 0, 0, 64, 64); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	unknown := testOptions
	unknown.Wave = "cosine"
	if _, err := New(unknown); err == nil {
		t.Error("expected error for unknown wave")
	}

	density := testOptions
	density.Params.Density = 0
	if _, err := New(density); !errors.Is(err, lattice.ErrDensity) {
		t.Errorf("expected ErrDensity, got %v", err)
	}

	tall := testOptions
	tall.Params.MaxHeight = 256
	if _, err := New(tall); err == nil {
		t.Error("expected error for max height above 255")
	}
}

func BenchmarkGenerator_Generate(b *testing.B) {
	g, err := New(testOptions)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Generate(0, 0, 64, 64)
	}
}
