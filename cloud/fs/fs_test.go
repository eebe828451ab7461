// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Filesystem = (*S3Filesystem)(nil)

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType("maps/a.json"))
	assert.Equal(t, "image/png", ContentType("a.PNG"))
	assert.Equal(t, "image/bmp", ContentType("a.bmp"))
	assert.Equal(t, "", ContentType("a.txt"))
}

func TestLocalFilesystem(t *testing.T) {
	dir := t.TempDir()
	local := NewLocalFilesystem(dir)

	require.NoError(t, local.UploadStaticFile("maps/abc.bmp", 60, []byte{1, 2, 3}))

	data, err := os.ReadFile(filepath.Join(dir, "maps", "abc.bmp"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestNewS3Filesystem_Bucket(t *testing.T) {
	_, err := NewS3Filesystem(nil, "")
	assert.Error(t, err)
}
