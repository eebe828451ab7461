// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/SoftbearStudios/wavenoise/terrain"
	"github.com/chewxy/math32"
)

// Size is the width and height of the cached world, centered on the origin.
const Size = 4096

const chunks = Size / chunkSize

// Terrain caches chunks of a terrain.Source as they are requested.
// All of its methods can be called concurrently.
type Terrain struct {
	generator  terrain.Source
	chunks     [chunks][chunks]atomic.Pointer[chunk]
	chunkCount int32
	mutex      sync.Mutex
}

func New(generator terrain.Source) *Terrain {
	return &Terrain{
		generator: generator,
	}
}

// Clamp clamps a rect to the cached world.
// width or height are 0 if the rect is entirely outside of it.
func (t *Terrain) Clamp(x, y, width, height int) (int, int, int, int) {
	minX, minY := t.start()
	maxX, maxY := t.end()

	x, width = clampSpan(x, width, minX, maxX)
	y, height = clampSpan(y, height, minY, maxY)
	return x, y, width, height
}

// clampSpan clamps [start, start+length) to [lo, hi) without computing
// start+length, which may overflow.
func clampSpan(start, length, lo, hi int) (int, int) {
	if start >= hi {
		return start, 0
	}
	if length <= 0 {
		return maxInt(start, lo), 0
	}
	if start < lo {
		// lo-start doesn't overflow since lo < 0
		if length <= lo-start {
			return lo, 0
		}
		length -= lo - start
		start = lo
	}
	return start, minInt(length, hi-start)
}

// At returns the run length encoded heightmap of a rect, clamped to the cached world.
// The caller may return the Data to the pool with Data.Pool.
func (t *Terrain) At(x, y, width, height int) *terrain.Data {
	x, y, width, height = t.Clamp(x, y, width, height)

	data := terrain.NewData()
	buffer := Buffer{
		buf: data.Data,
	}
	// Terrain is smooth, so runs average a few heights
	buffer.Grow(width * height / 4)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buffer.writeByte(t.at(x+i, y+j))
		}
	}

	data.X = x
	data.Y = y
	data.Data = buffer.Buffer()
	data.Stride = width
	data.Length = width * height

	return data
}

// Decode decodes data returned by Terrain.At into a heightmap.
func Decode(data *terrain.Data) ([]byte, error) {
	var buffer Buffer
	// Read decrements runs in place
	buffer.Reset(append([]byte(nil), data.Data...))

	raw := make([]byte, data.Length)
	n, _ := buffer.Read(raw)
	if n != data.Length {
		return nil, errors.New("compressed: data shorter than its length")
	}
	return raw, nil
}

// Generate implements terrain.Source.Generate by reading from the cache.
// Heights outside of the cached world are 0.
func (t *Terrain) Generate(x, y, width, height int) []byte {
	buf := make([]byte, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = t.at2(x+i, y+j)
		}
	}
	return buf
}

// AtPos returns the bilinearly interpolated height at a fractional position.
func (t *Terrain) AtPos(x, y float32) byte {
	fx, fy := math32.Floor(x), math32.Floor(y)
	cx, cy := math32.Ceil(x), math32.Ceil(y)

	// Sample 4x4 grid
	// 00 10
	// 01 11
	c00 := t.at2(int(fx), int(fy))
	c10 := t.at2(int(cx), int(fy))
	c01 := t.at2(int(fx), int(cy))
	c11 := t.at2(int(cx), int(cy))

	return blerp(c00, c10, c01, c11, x-fx, y-fy)
}

// ChunkCount returns the number of chunks generated so far.
func (t *Terrain) ChunkCount() int {
	return int(atomic.LoadInt32(&t.chunkCount))
}

// at2 is at but returns 0 outside of the cached world.
func (t *Terrain) at2(x, y int) byte {
	minX, minY := t.start()
	maxX, maxY := t.end()

	if x >= minX && x < maxX && y >= minY && y < maxY {
		return t.at(x, y)
	}
	return 0
}

// x and y must be within start and end.
func (t *Terrain) at(x, y int) byte {
	x += Size / 2
	y += Size / 2

	c := t.getChunk(x, y)
	return c.at(uint(x&(chunkSize-1)), uint(y&(chunkSize-1)))
}

// X and Y in 0 -> Size coordinates
func (t *Terrain) getChunk(x, y int) *chunk {
	ucx := x / chunkSize
	ucy := y / chunkSize

	// Basically sync.Once for each chunk but with shared mutex
	ptr := &t.chunks[ucx][ucy]
	c := ptr.Load()

	if c == nil {
		t.mutex.Lock()
		defer t.mutex.Unlock()

		// Load again to make sure its still nil after acquiring the lock
		c = ptr.Load()
		if c == nil {
			c = generateChunk(t.generator, ucx-chunks/2, ucy-chunks/2)
			atomic.AddInt32(&t.chunkCount, 1)
			ptr.Store(c)
		}
	}

	return c
}

// x and y must be >= start
func (t *Terrain) start() (x, y int) {
	x = -Size / 2
	y = -Size / 2
	return
}

// x and y must be < end
func (t *Terrain) end() (x, y int) {
	x = Size / 2
	y = Size / 2
	return
}
