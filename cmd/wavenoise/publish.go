// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/SoftbearStudios/wavenoise/cloud"
	"github.com/SoftbearStudios/wavenoise/cloud/db"
	"github.com/SoftbearStudios/wavenoise/cloud/fs"
	"github.com/SoftbearStudios/wavenoise/config"
	"github.com/SoftbearStudios/wavenoise/terrain"
	"github.com/SoftbearStudios/wavenoise/terrain/noise"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Metadata is written next to an image with -meta.
type Metadata struct {
	Image   string        `json:"image"`
	Format  string        `json:"format"`
	Width   int           `json:"width"`
	Options noise.Options `json:"options"`
}

func encodeImage(img image.Image, format terrain.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := terrain.Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMetadata(options noise.Options, width int, format terrain.Format, filename string) ([]byte, error) {
	return json.MarshalIndent(Metadata{
		Image:   filename,
		Format:  string(format),
		Width:   width,
		Options: options,
	}, "", "  ")
}

func metadataPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}

type publishOptions struct {
	cloud    config.CloudConfig
	dir      string
	filename string
	image    []byte
	metadata []byte
	options  noise.Options
	width    int
}

// publish uploads the image and metadata and records them in the catalog.
// Publishing is optional, so errors are only logged.
func publish(p publishOptions) {
	filesystem, database := openCloud(p.cloud, p.dir)
	if filesystem == nil {
		return
	}

	if err := publishTo(filesystem, database, p); err != nil {
		log.Printf("publish error: %v\n", err)
	}
}

func publishTo(filesystem fs.Filesystem, database db.Database, p publishOptions) error {
	if err := filesystem.UploadStaticFile(p.filename, p.cloud.SecondsCache, p.image); err != nil {
		return err
	}
	if p.metadata != nil {
		if err := filesystem.UploadStaticFile(metadataPath(p.filename), p.cloud.SecondsCache, p.metadata); err != nil {
			return err
		}
	}
	log.Println("published", p.filename)

	if database != nil {
		render := db.NewRender(p.options, p.width, p.filename)
		if err := database.PutRender(render); err != nil {
			return err
		}
		log.Println("recorded render", render.ID)
	}
	return nil
}

// openCloud returns nil filesystem if there is nowhere to publish to.
func openCloud(c config.CloudConfig, dir string) (fs.Filesystem, db.Database) {
	if c.Bucket == "" {
		if dir == "" {
			return nil, nil
		}
		return fs.NewLocalFilesystem(dir), nil
	}

	session, err := cloud.NewSession(c.Region, c.Profile)
	if err != nil {
		// Cloud is not required, just log an error
		log.Printf("Cloud error: %v\n", err)
		return nil, nil
	}

	filesystem, err := fs.NewS3Filesystem(session, c.Bucket)
	if err != nil {
		log.Printf("Cloud error: %v\n", err)
		return nil, nil
	}

	var database db.Database
	if c.Table != "" {
		if database, err = db.NewDynamoDBDatabase(session, c.Table); err != nil {
			log.Printf("Cloud error: %v\n", err)
			database = nil
		}
	}
	return filesystem, database
}
