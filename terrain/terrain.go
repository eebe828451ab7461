// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "sync"

// Source generates heightmap data.
// The returned slice has width*height heights, where buf[i+j*width] is at (x+i, y+j).
type Source interface {
	Generate(x, y, width, height int) []byte
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(x, y, width, height int) []byte

func (f SourceFunc) Generate(x, y, width, height int) []byte {
	return f(x, y, width, height)
}

// Data describes part of a heightmap.
// It may be in a compressed format.
type Data struct {
	X      int    `json:"x"`      // X is the terrain space x of the first height.
	Y      int    `json:"y"`      // Y is the terrain space y of the first height.
	Data   []byte `json:"data"`   // Data is a possibly compressed terrain heightmap.
	Stride int    `json:"stride"` // Stride is width of Data.
	Length int    `json:"length"` // Length is uncompressed length of Data for faster reading.
}

var dataPool = sync.Pool{
	New: func() interface{} {
		return &Data{
			Data: make([]byte, 0, 2048),
		}
	},
}

func NewData() *Data {
	return dataPool.Get().(*Data)
}

func (data *Data) Pool() {
	*data = Data{
		Data: data.Data[:0],
	}
	dataPool.Put(data)
}

// Height returns the height of the data's rect, 0 if empty.
func (data *Data) Height() int {
	if data.Stride == 0 {
		return 0
	}
	return data.Length / data.Stride
}
