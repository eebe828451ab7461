// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/SoftbearStudios/wavenoise/config"
	"github.com/SoftbearStudios/wavenoise/terrain"
	"github.com/SoftbearStudios/wavenoise/terrain/noise"
	"github.com/SoftbearStudios/wavenoise/wave"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type flags struct {
	configPath string
	cpuProfile string
	output     string
	format     string
	dir        string

	cfg *config.Config
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	set := flag.NewFlagSet("wavenoise", flag.ContinueOnError)

	// Defaults are shown for reference, only flags that are set override the config.
	def := config.Default()
	var (
		size, maxHeight, width, workers int
		offsetX, offsetY                int
		density, frequency              float64
		waveName, bucket, table, region string
		color, meta                     bool
	)

	set.StringVar(&f.configPath, "config", "", "YAML config `file` (default $"+config.ConfigEnv+")")
	set.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	set.StringVar(&f.output, "o", "heightmap", "output image path, the extension is appended if missing")
	set.StringVar(&f.format, "format", "", "image format, bmp or png (default from -o or config)")
	set.StringVar(&f.dir, "dir", "", "also copy the image (and metadata) into this directory")
	set.IntVar(&width, "size", def.Render.Width, "width and height of the image")
	set.IntVar(&size, "region", def.Noise.Size, "hypothetical size of the region lattice points are defined in")
	set.IntVar(&maxHeight, "max-height", def.Noise.MaxHeight, "maximum height (at most 255)")
	set.Float64Var(&density, "density", def.Noise.Density, "fraction of region between lattice points")
	set.Float64Var(&frequency, "frequency", def.Noise.Frequency, "wave frequency")
	set.StringVar(&waveName, "wave", def.Noise.Wave, "wave, one of "+kindList())
	set.IntVar(&offsetX, "offset-x", 0, "x offset of the origin (default random)")
	set.IntVar(&offsetY, "offset-y", 0, "y offset of the origin (default random)")
	set.IntVar(&workers, "workers", 0, "rows generated in parallel (default GOMAXPROCS)")
	set.BoolVar(&color, "color", def.Render.Color, "color heights by terrain level")
	set.BoolVar(&meta, "meta", def.Render.Meta, "write a .json file describing the image")
	set.StringVar(&bucket, "bucket", "", "upload to this S3 bucket")
	set.StringVar(&table, "table", "", "record the upload in this DynamoDB table")
	set.StringVar(&region, "aws-region", def.Cloud.Region, "AWS region")

	if err := set.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			cfg.Render.Width = width
		case "region":
			cfg.Noise.Size = size
		case "max-height":
			cfg.Noise.MaxHeight = maxHeight
		case "density":
			cfg.Noise.Density = density
		case "frequency":
			cfg.Noise.Frequency = frequency
		case "wave":
			cfg.Noise.Wave = waveName
		case "offset-x":
			cfg.Noise.OffsetX = &offsetX
		case "offset-y":
			cfg.Noise.OffsetY = &offsetY
		case "workers":
			cfg.Noise.Workers = workers
		case "color":
			cfg.Render.Color = color
		case "meta":
			cfg.Render.Meta = meta
		case "bucket":
			cfg.Cloud.Bucket = bucket
		case "table":
			cfg.Cloud.Table = table
		case "aws-region":
			cfg.Cloud.Region = region
		}
	})

	f.cfg = cfg
	return f, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	if f.cpuProfile != "" {
		file, err := os.Create(f.cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg := f.cfg
	if cfg.Render.Width <= 0 {
		return fmt.Errorf("invalid size: %d", cfg.Render.Width)
	}

	format, err := outputFormat(f.format, f.output, cfg.Render.Format)
	if err != nil {
		return err
	}
	path := terrain.WithExtension(f.output, format)

	cfg.Noise.ResolveOffset(rand.New(rand.NewSource(time.Now().UnixNano())))
	options, err := cfg.Noise.Options()
	if err != nil {
		return err
	}

	generator, err := noise.New(options)
	if err != nil {
		return err
	}

	start := time.Now()
	size := cfg.Render.Width
	raw, err := generator.GenerateContext(ctx, 0, 0, size, size)
	if err != nil {
		return err
	}
	log.Printf("generated %dx%d %s heightmap at offset (%d, %d) in %s",
		size, size, options.Wave, options.OffsetX, options.OffsetY, time.Since(start).Round(time.Millisecond))

	img := terrain.GrayImage(raw, size)
	if cfg.Render.Color {
		img = terrain.ColorImage(raw, size)
	}

	encoded, err := encodeImage(img, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created %s: %s\n", strings.ToUpper(string(format)), path)

	var metadata []byte
	if cfg.Render.Meta {
		metadata, err = encodeMetadata(options, size, format, filepath.Base(path))
		if err != nil {
			return err
		}
		metaPath := metadataPath(path)
		if err := os.WriteFile(metaPath, metadata, 0644); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Created metadata: %s\n", metaPath)
	}

	publish(publishOptions{
		cloud:    cfg.Cloud,
		dir:      f.dir,
		filename: filepath.Base(path),
		image:    encoded,
		metadata: metadata,
		options:  options,
		width:    size,
	})

	return nil
}

// outputFormat picks the format from the flag, then the output extension, then config.
func outputFormat(flagFormat, output, configFormat string) (terrain.Format, error) {
	if flagFormat != "" {
		return terrain.ParseFormat(flagFormat)
	}
	if f, err := terrain.ParseFormat(filepath.Ext(output)); err == nil {
		return f, nil
	}
	return terrain.ParseFormat(configFormat)
}

func kindList() string {
	var names []string
	for _, k := range wave.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
