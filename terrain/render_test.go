// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// gradient is a Source where the height at (x, y) is x + 16*y.
var gradient = SourceFunc(func(x, y, width, height int) []byte {
	buf := make([]byte, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = byte(x + i + 16*(y+j))
		}
	}
	return buf
})

func TestRenderGray(t *testing.T) {
	const size = 8
	img := RenderGray(gradient, 2, 3, size)

	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("expected %dx%d image, got %v", size, size, b)
	}

	pixels := 0
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			h := byte(2 + i + 16*(3+j))
			expected := color.RGBA{R: h, G: h, B: h, A: 255}
			if c := img.RGBAAt(i, j); c != expected {
				t.Errorf("pixel (%d, %d) expected %v, got %v", i, j, expected, c)
			}
			pixels++
		}
	}

	if pixels != size*size {
		t.Errorf("expected %d pixels, got %d", size*size, pixels)
	}
}

func TestRenderColor(t *testing.T) {
	img := RenderColor(gradient, 0, 0, 16)

	if c := img.RGBAAt(0, 0); c != colors[0].Color() {
		t.Errorf("height 0 expected %v, got %v", colors[0].Color(), c)
	}
	// (1, 4) has height 65
	if c := img.RGBAAt(1, 4); c != colors[2].Color() {
		t.Errorf("sand height expected %v, got %v", colors[2].Color(), c)
	}
	for j := 0; j < 16; j++ {
		for i := 0; i < 16; i++ {
			if a := img.RGBAAt(i, j).A; a != 255 {
				t.Fatalf("pixel (%d, %d) alpha %d", i, j, a)
			}
		}
	}
}

func TestLevelColor_Snow(t *testing.T) {
	if c := LevelColor(SnowLevel).Color(); c.R < 200 || c.R != c.G || c.G != c.B {
		t.Errorf("expected snow to be light gray, got %v", c)
	}
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		path     string
		format   Format
		expected string
	}{
		{"map", FormatBMP, "map.bmp"},
		{"map.bmp", FormatBMP, "map.bmp"},
		{"map.BMP", FormatBMP, "map.BMP"},
		{"map.png", FormatBMP, "map.png.bmp"},
		{"dir.v2/map", FormatPNG, "dir.v2/map.png"},
	}

	for _, test := range tests {
		if path := WithExtension(test.path, test.format); path != test.expected {
			t.Errorf("WithExtension(%q, %s) expected %q, got %q", test.path, test.format, test.expected, path)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"bmp", ".bmp", "PNG"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(gif) expected error")
	}
}

func TestEncode(t *testing.T) {
	img := RenderGray(gradient, 0, 0, 4)

	for _, f := range []Format{FormatBMP, FormatPNG} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, f); err != nil {
			t.Fatalf("Encode %s: %v", f, err)
		}

		decoded, format, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("decode %s: %v", f, err)
		}
		if format != string(f) {
			t.Errorf("expected format %s, got %s", f, format)
		}

		r, g, b, _ := decoded.At(3, 2).RGBA()
		if h := byte(3 + 16*2); byte(r>>8) != h || byte(g>>8) != h || byte(b>>8) != h {
			t.Errorf("%s pixel (3, 2) expected %d, got %d %d %d", f, h, r>>8, g>>8, b>>8)
		}
	}

	if err := Encode(&bytes.Buffer{}, img, Format("tiff")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
