// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"sort"
	"sync"
)

// MemoryDatabase is a Database that forgets everything when the process exits.
type MemoryDatabase struct {
	mutex   sync.Mutex
	renders map[string]Render
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{renders: make(map[string]Render)}
}

func (m *MemoryDatabase) PutRender(render Render) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.renders[render.Wave+"/"+render.ID] = render
	return nil
}

func (m *MemoryDatabase) ReadRenders() ([]Render, error) {
	return m.read(func(Render) bool { return true }), nil
}

func (m *MemoryDatabase) ReadRendersByWave(wave string) ([]Render, error) {
	return m.read(func(r Render) bool { return r.Wave == wave }), nil
}

// read returns matching renders, oldest first.
func (m *MemoryDatabase) read(match func(Render) bool) []Render {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var renders []Render
	for _, r := range m.renders {
		if match(r) {
			renders = append(renders, r)
		}
	}

	sort.Slice(renders, func(i, j int) bool {
		if !renders[i].Created.Equal(renders[j].Created) {
			return renders[i].Created.Before(renders[j].Created)
		}
		return renders[i].ID < renders[j].ID
	})
	return renders
}
