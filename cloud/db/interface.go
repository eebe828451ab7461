// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Database is a catalog of rendered heightmaps.
type Database interface {
	PutRender(render Render) error
	ReadRenders() (renders []Render, err error)
	ReadRendersByWave(wave string) (renders []Render, err error)
}
