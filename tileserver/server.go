// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tileserver

import (
	"bytes"
	"errors"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/SoftbearStudios/wavenoise/terrain"
	"github.com/SoftbearStudios/wavenoise/terrain/compressed"
	"github.com/SoftbearStudios/wavenoise/terrain/noise"
)

const defaultMaxTileSize = 1024

type Options struct {
	Generator *noise.Generator
	// MaxTileSize is the largest tile width or region side served.
	MaxTileSize int
}

// Server serves a cached heightmap over HTTP.
type Server struct {
	generator   *noise.Generator
	terrain     *compressed.Terrain
	maxTileSize int
	mux         *http.ServeMux
}

// Status is served at /.
type Status struct {
	Options    noise.Options `json:"options"`
	ChunkCount int           `json:"chunkCount"`
	WorldSize  int           `json:"worldSize"`
}

func New(options Options) *Server {
	if options.MaxTileSize <= 0 {
		options.MaxTileSize = defaultMaxTileSize
	}

	s := &Server{
		generator:   options.Generator,
		terrain:     compressed.New(options.Generator),
		maxTileSize: options.MaxTileSize,
		mux:         http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.serveIndex)
	s.mux.HandleFunc("/tile.png", s.serveTile)
	s.mux.HandleFunc("/region", s.serveRegion)
	s.mux.HandleFunc("/height", s.serveHeight)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	s.mux.ServeHTTP(w, r)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, Status{
		Options:    s.generator.Options(),
		ChunkCount: s.terrain.ChunkCount(),
		WorldSize:  compressed.Size,
	})
}

func (s *Server) serveTile(w http.ResponseWriter, r *http.Request) {
	q := queryInts{r: r}
	x := q.get("x", 0)
	y := q.get("y", 0)
	size := q.get("size", 256)
	if q.err != nil {
		http.Error(w, q.err.Error(), http.StatusBadRequest)
		return
	}
	if size <= 0 || size > s.maxTileSize {
		http.Error(w, "size out of range", http.StatusBadRequest)
		return
	}

	var img *image.RGBA
	if r.URL.Query().Get("color") != "" {
		img = terrain.RenderColor(s.terrain, x, y, size)
	} else {
		img = terrain.RenderGray(s.terrain, x, y, size)
	}

	var buf bytes.Buffer
	if err := terrain.Encode(&buf, img, terrain.FormatPNG); err != nil {
		log.Println("tile encode error", err)
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", terrain.FormatPNG.ContentType())
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) serveRegion(w http.ResponseWriter, r *http.Request) {
	q := queryInts{r: r}
	x := q.get("x", 0)
	y := q.get("y", 0)
	width := q.get("w", 64)
	height := q.get("h", 64)
	if q.err != nil {
		http.Error(w, q.err.Error(), http.StatusBadRequest)
		return
	}
	if width <= 0 || height <= 0 || width > s.maxTileSize || height > s.maxTileSize {
		http.Error(w, "region out of range", http.StatusBadRequest)
		return
	}

	data := s.terrain.At(x, y, width, height)
	defer data.Pool()
	s.writeJSON(w, data)
}

// Height is served at /height.
type Height struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Height byte    `json:"height"`
}

func (s *Server) serveHeight(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 32)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 32)
	if err := errors.Join(errX, errY); err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, Height{
		X:      float32(x),
		Y:      float32(y),
		Height: s.terrain.AtPos(float32(x), float32(y)),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	buf, err := json.Marshal(v)
	if err != nil {
		log.Println("json error", err)
		http.Error(w, "json error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

// queryInts parses integer query parameters, keeping the first error.
type queryInts struct {
	r   *http.Request
	err error
}

func (q *queryInts) get(name string, def int) int {
	s := q.r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil && q.err == nil {
		q.err = errors.New("invalid " + name)
	}
	return v
}
