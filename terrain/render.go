// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

type ColorVec [3]float32

var colors = [...]ColorVec{
	RGB(0, 50, 115),
	RGB(0, 75, 130),
	RGB(194, 178, 128),
	RGB(90, 180, 30),
	RGB(105, 110, 115),
	Gray(220),
}

// RenderGray renders a size by size square of source starting at x, y.
func RenderGray(source Source, x, y, size int) *image.RGBA {
	return GrayImage(source.Generate(x, y, size, size), size)
}

// RenderColor is like RenderGray but colors heights by terrain level.
func RenderColor(source Source, x, y, size int) *image.RGBA {
	return ColorImage(source.Generate(x, y, size, size), size)
}

// GrayImage converts a size by size heightmap to an image.
// Each height is written to all three color channels with full opacity.
func GrayImage(raw []byte, size int) *image.RGBA {
	return toImage(raw, size, func(h byte) color.RGBA {
		return color.RGBA{R: h, G: h, B: h, A: 255}
	})
}

// ColorImage is like GrayImage but colors heights by terrain level.
func ColorImage(raw []byte, size int) *image.RGBA {
	return toImage(raw, size, func(h byte) color.RGBA {
		return LevelColor(h).Color()
	})
}

func toImage(raw []byte, size int, colorOf func(byte) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size == 0 {
		return img
	}

	// Early bounds check
	_ = raw[size*size-1]

	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			img.SetRGBA(i, j, colorOf(raw[i+j*size]))
		}
	}

	return img
}

// LevelColor returns the color of a height.
func LevelColor(h byte) ColorVec {
	switch {
	case h <= OceanLevel:
		return colors[0].Lerp(colors[1], clamp(float32(h)/float32(OceanLevel)))
	case h <= SandLevel:
		return colors[2]
	case h <= GrassLevel:
		return colors[2].Lerp(colors[3], clamp(float32(h-SandLevel)*0.05))
	case h <= RockLevel:
		return colors[3].Lerp(colors[4], clamp(float32(h-GrassLevel)*0.1))
	default:
		return colors[4].Lerp(colors[5], clamp(float32(h-RockLevel)*0.07))
	}
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func clamp(f float32) float32 {
	return math32.Max(0, math32.Min(f, 1))
}

func floatToByte(f float32) byte {
	return byte(clamp(f)*255 + 0.5)
}
