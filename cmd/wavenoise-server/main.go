// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/SoftbearStudios/wavenoise/config"
	"github.com/SoftbearStudios/wavenoise/terrain/noise"
	"github.com/SoftbearStudios/wavenoise/tileserver"
	"golang.org/x/net/netutil"
)

func main() {
	var (
		configPath     string
		port           int
		maxConnections int
		waveName       string
		pprofPort      int
	)

	flag.StringVar(&configPath, "config", "", "YAML config `file` (default $"+config.ConfigEnv+")")
	flag.IntVar(&port, "port", 0, "http service port (default config, $"+config.PortEnv+" or 8192)")
	flag.IntVar(&maxConnections, "max-connections", 0, "maximum number of inbound TCP connections (default config)")
	flag.StringVar(&waveName, "wave", "", "wave (default config)")
	flag.IntVar(&pprofPort, "pprof-port", -1, "serve net/http/pprof on this port if >= 0")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("config: ", err)
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if maxConnections > 0 {
		cfg.Server.MaxConnections = maxConnections
	}
	if waveName != "" {
		cfg.Noise.Wave = waveName
	}

	cfg.Noise.ResolveOffset(rand.New(rand.NewSource(time.Now().UnixNano())))
	options, err := cfg.Noise.Options()
	if err != nil {
		log.Fatal(err)
	}

	generator, err := noise.New(options)
	if err != nil {
		log.Fatal(err)
	}

	server := tileserver.New(tileserver.Options{
		Generator:   generator,
		MaxTileSize: cfg.Server.MaxTileSize,
	})

	if pprofPort >= 0 {
		go func() {
			log.Println("pprof: ", http.ListenAndServe(fmt.Sprint("localhost:", pprofPort), nil))
		}()
	}

	l, err := net.Listen("tcp", fmt.Sprint(":", cfg.Server.GetPort()))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	if cfg.Server.MaxConnections > 0 {
		l = netutil.LimitListener(l, cfg.Server.MaxConnections)
	}

	log.Printf("%s heightmap server started on %s (offset %d, %d)\n", options.Wave, l.Addr(), options.OffsetX, options.OffsetY)
	log.Fatal("Serve: ", http.Serve(l, server))
}
