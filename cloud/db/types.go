// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"time"

	"github.com/SoftbearStudios/wavenoise/terrain/noise"
	"github.com/google/uuid"
)

// Render describes a heightmap that was rendered and uploaded.
type Render struct {
	Wave      string    `dynamo:"wave,hash" json:"wave"`
	ID        string    `dynamo:"id,range" json:"id"`
	Created   time.Time `dynamo:"created" json:"created"`
	Size      int       `dynamo:"size" json:"size"`
	MaxHeight int       `dynamo:"maxHeight" json:"maxHeight"`
	Density   float64   `dynamo:"density" json:"density"`
	Frequency float64   `dynamo:"frequency" json:"frequency"`
	OffsetX   int       `dynamo:"offsetX" json:"offsetX"`
	OffsetY   int       `dynamo:"offsetY" json:"offsetY"`
	Width     int       `dynamo:"width" json:"width"`
	Key       string    `dynamo:"key" json:"key"` // Key is the filename of the image.
}

// NewRender describes an image of width rendered with options, with a new random ID.
func NewRender(options noise.Options, width int, key string) Render {
	return Render{
		Wave:      string(options.Wave),
		ID:        uuid.NewString(),
		Created:   time.Now().UTC(),
		Size:      options.Params.Size,
		MaxHeight: options.Params.MaxHeight,
		Density:   options.Params.Density,
		Frequency: options.Params.Frequency,
		OffsetX:   options.OffsetX,
		OffsetY:   options.OffsetY,
		Width:     width,
		Key:       key,
	}
}
