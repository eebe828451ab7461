// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"path"
	"strings"
)

type Filesystem interface {
	UploadStaticFile(filename string, secondsCache int, data []byte) error
}

var contentTypes = map[string]string{
	".json": "application/json",
	".png":  "image/png",
	".bmp":  "image/bmp",
}

// ContentType returns the content type of filename or "" if unknown.
func ContentType(filename string) string {
	return contentTypes[strings.ToLower(path.Ext(filename))]
}
