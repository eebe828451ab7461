// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/SoftbearStudios/wavenoise/lattice"
	"github.com/SoftbearStudios/wavenoise/terrain/noise"
	"github.com/SoftbearStudios/wavenoise/wave"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv is consulted by Load when no path is given.
	ConfigEnv = "WAVENOISE_CONFIG"
	// PortEnv is consulted by ServerConfig.GetPort when no port is configured.
	PortEnv = "WAVENOISE_PORT"

	defaultPort = 8192
	// Random offsets are kept small enough for exact float64 lattice math.
	maxRandomOffset = 1 << 20
)

// Config is the root of a YAML configuration file.
type Config struct {
	Noise  NoiseConfig  `yaml:"noise"`
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
	Cloud  CloudConfig  `yaml:"cloud"`
}

type NoiseConfig struct {
	Wave      string  `yaml:"wave"`
	Size      int     `yaml:"size"`
	MaxHeight int     `yaml:"max_height"`
	Density   float64 `yaml:"density"`
	Frequency float64 `yaml:"frequency"`
	// Offsets are drawn at random by ResolveOffset if unset.
	OffsetX *int `yaml:"offset_x"`
	OffsetY *int `yaml:"offset_y"`
	Workers int  `yaml:"workers"`
}

type RenderConfig struct {
	Width  int    `yaml:"width"`
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
	Meta   bool   `yaml:"meta"`
}

type ServerConfig struct {
	Port           int `yaml:"port"`
	MaxConnections int `yaml:"max_connections"`
	MaxTileSize    int `yaml:"max_tile_size"`
}

type CloudConfig struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
	Bucket  string `yaml:"bucket"`
	Table   string `yaml:"table"`
	// SecondsCache is the max-age of uploaded files.
	SecondsCache int `yaml:"seconds_cache"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Noise: NoiseConfig{
			Wave:      string(wave.KindSine),
			Size:      64,
			MaxHeight: 255,
			Density:   0.2,
			Frequency: 0.25,
		},
		Render: RenderConfig{
			Width:  64,
			Format: "bmp",
		},
		Server: ServerConfig{
			MaxConnections: 256,
			MaxTileSize:    1024,
		},
		Cloud: CloudConfig{
			Region:       "us-east-1",
			Profile:      "wavenoise",
			SecondsCache: 3600,
		},
	}
}

// Load reads a YAML file on top of Default.
// If path is "", the ConfigEnv environment variable is used, and if that is empty too
// the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetPort returns the port with priority config -> env -> default.
func (s *ServerConfig) GetPort() int {
	if s.Port > 0 {
		return s.Port
	}

	if envVal := os.Getenv(PortEnv); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// ResolveOffset fills in unset offsets from random.
func (n *NoiseConfig) ResolveOffset(random *rand.Rand) {
	if n.OffsetX == nil {
		x := random.Intn(maxRandomOffset)
		n.OffsetX = &x
	}
	if n.OffsetY == nil {
		y := random.Intn(maxRandomOffset)
		n.OffsetY = &y
	}
}

// Options converts the noise config to generator options.
// Offsets must be resolved first.
func (n *NoiseConfig) Options() (noise.Options, error) {
	kind, err := wave.ParseKind(n.Wave)
	if err != nil {
		return noise.Options{}, err
	}

	options := noise.Options{
		Wave: kind,
		Params: lattice.Params{
			Size:      n.Size,
			MaxHeight: n.MaxHeight,
			Density:   n.Density,
			Frequency: n.Frequency,
		},
		Workers: n.Workers,
	}
	if n.OffsetX != nil {
		options.OffsetX = *n.OffsetX
	}
	if n.OffsetY != nil {
		options.OffsetY = *n.OffsetY
	}
	return options, nil
}
