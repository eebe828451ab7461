// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package lattice

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/SoftbearStudios/wavenoise/wave"
)

// constWave observes the same height everywhere.
type constWave int

func (c constWave) Observe(distance, maxHeight int, frequency float64) int {
	return int(c)
}

// seedWaves observes a fixed height per seed.
func seedWaves(heights map[int]int) wave.Factory {
	return func(seed int) wave.Wave {
		return constWave(heights[seed])
	}
}

var testParams = Params{Size: 64, MaxHeight: 255, Density: 0.25, Frequency: 0.2}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		t, smoothed float64
	}{
		{0, 0},
		{0.1, 0.02},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{0.9, 0.98},
		{1, 1},
	}

	for _, test := range tests {
		if s := Smooth(test.t); !approx(s, test.smoothed) {
			t.Errorf("Smooth(%v) expected %v, got %v", test.t, test.smoothed, s)
		}
	}

	if s := Smooth(0.5); s != 0.5 {
		t.Errorf("Smooth(0.5) expected exactly 0.5, got %v", s)
	}
}

func TestSmooth_Symmetric(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		if sum := Smooth(x) + Smooth(1-x); !approx(sum, 1) {
			t.Errorf("Smooth(%v) + Smooth(%v) expected 1, got %v", x, 1-x, sum)
		}
	}
}

func TestSmooth_Monotonic(t *testing.T) {
	prev := Smooth(0)
	for i := 1; i <= 1000; i++ {
		s := Smooth(float64(i) / 1000)
		if s < prev {
			t.Fatalf("Smooth not monotonic at %v: %v < %v", float64(i)/1000, s, prev)
		}
		prev = s
	}
}

func TestGenerator_Observe_LatticePoint(t *testing.T) {
	const c = 93
	g := New(func(seed int) wave.Wave { return constWave(c) })

	h, err := g.Observe(0, 0, testParams)
	if err != nil {
		t.Fatal(err)
	}
	if h != c {
		t.Errorf("Observe(0, 0) expected %d, got %d", c, h)
	}
}

func TestGenerator_interpolate(t *testing.T) {
	g := New(seedWaves(map[int]int{0: 100, 16: 200}))

	if h := g.interpolate(8, 0, 255, testParams.CellSize(), testParams.Frequency); h != 150 {
		t.Errorf("interpolate(8, 0) expected 150, got %v", h)
	}

	// On a lattice point both neighbors are the same point
	if h := g.interpolate(16, 3, 255, testParams.CellSize(), testParams.Frequency); h != 200 {
		t.Errorf("interpolate(16, 3) expected 200, got %v", h)
	}

	g = New(seedWaves(map[int]int{-16: 40, 0: 80}))
	if h := g.interpolate(-8, 0, 255, testParams.CellSize(), testParams.Frequency); h != 60 {
		t.Errorf("interpolate(-8, 0) expected 60, got %v", h)
	}
}

func TestGenerator_Observe_Blend(t *testing.T) {
	g := New(seedWaves(map[int]int{0: 100, 16: 200}))

	// Vertical interpolation gives 150, horizontal (y = 0 is a lattice point) gives 100
	h, err := g.Observe(8, 0, testParams)
	if err != nil {
		t.Fatal(err)
	}
	if h != 125 {
		t.Errorf("Observe(8, 0) expected 125, got %d", h)
	}
}

func TestGenerator_Observe_AxisSymmetry(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	for _, kind := range wave.Kinds() {
		g := New(kind.Factory())

		for i := 0; i < 200; i++ {
			x, y := random.Intn(1000)-500, random.Intn(1000)-500
			a, _ := g.Observe(x, y, testParams)
			b, _ := g.Observe(y, x, testParams)
			if a != b {
				t.Errorf("%s: Observe(%d, %d) = %d but Observe(%d, %d) = %d", kind, x, y, a, y, x, b)
			}
		}
	}
}

func TestGenerator_Observe_Deterministic(t *testing.T) {
	for _, kind := range wave.Kinds() {
		a := New(kind.Factory())
		b := New(kind.Factory())

		for x := 0; x < 40; x++ {
			for y := 0; y < 40; y += 3 {
				ha, _ := a.Observe(x, y, testParams)
				hb, _ := b.Observe(x, y, testParams)
				hc, _ := a.Observe(x, y, testParams)
				if ha != hb || ha != hc {
					t.Fatalf("%s: Observe(%d, %d) not reproducible: %d %d %d", kind, x, y, ha, hb, hc)
				}
			}
		}
	}
}

func TestGenerator_Observe_Bounded(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	errs := 0

	for _, kind := range wave.Kinds() {
		g := New(kind.Factory())

		for i := 0; i < 1000; i++ {
			params := Params{
				Size:      1 + random.Intn(512),
				MaxHeight: random.Intn(256),
				Density:   0.01 + random.Float64(),
				Frequency: random.Float64(),
			}
			x, y := random.Intn(1<<16)-1<<15, random.Intn(1<<16)-1<<15

			h, err := g.Observe(x, y, params)
			if err != nil {
				t.Fatal(err)
			}
			if h < 0 || h > params.MaxHeight {
				t.Errorf("%s: Observe(%d, %d, %+v) = %d out of range", kind, x, y, params, h)
				if errs++; errs > 10 {
					t.FailNow()
				}
			}
		}
	}
}

func TestGenerator_Observe_Invalid(t *testing.T) {
	g := New(wave.KindSine.Factory())

	tests := []struct {
		params Params
		err    error
	}{
		{Params{Size: 0, MaxHeight: 255, Density: 0.2, Frequency: 0.25}, ErrSize},
		{Params{Size: -5, MaxHeight: 255, Density: 0.2, Frequency: 0.25}, ErrSize},
		{Params{Size: 64, MaxHeight: 255, Density: 0, Frequency: 0.25}, ErrDensity},
		{Params{Size: 64, MaxHeight: 255, Density: -0.5, Frequency: 0.25}, ErrDensity},
		{Params{Size: 64, MaxHeight: 255, Density: math.NaN(), Frequency: 0.25}, ErrDensity},
		{Params{Size: 64, MaxHeight: 255, Density: math.Inf(1), Frequency: 0.25}, ErrDensity},
		{Params{Size: 64, MaxHeight: -1, Density: 0.2, Frequency: 0.25}, ErrMaxHeight},
		{Params{Size: 64, MaxHeight: 255, Density: 0.2, Frequency: math.NaN()}, ErrFrequency},
	}

	for _, test := range tests {
		if _, err := g.Observe(1, 2, test.params); !errors.Is(err, test.err) {
			t.Errorf("Observe with %+v expected %v, got %v", test.params, test.err, err)
		}
	}

	// Oversized cell is allowed
	if _, err := g.Observe(1, 2, Params{Size: 64, MaxHeight: 255, Density: 2, Frequency: 0.25}); err != nil {
		t.Errorf("density > 1 expected no error, got %v", err)
	}
}

func BenchmarkGenerator_Observe(b *testing.B) {
	g := New(wave.KindSine.Factory())
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = g.ObserveUnchecked(i&1023, (i>>10)&1023, testParams)
	}
}
