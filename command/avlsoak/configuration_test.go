// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.soak = {
    seed = 99,
    rounds = 3,
    operations = 500,
    key_space = 64,
    oracles = { "btree" },
    weights = {
        insert = 2,
        erase = 1,
    },
}
M.logging = {
    file = "soak.log",
    levels = {
        DEFAULT = "debug",
    },
}
return M
`

func writeFile(t *testing.T, dir string, content string) string {
	fileName := filepath.Join(dir, "avlsoak.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := os.MkdirTemp("", "avlsoak")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	c, err := getConfiguration(writeFile(t, dir, testConfiguration), nil)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, int64(99), c.Soak.Seed, "seed")
	assert.Equal(t, 3, c.Soak.Rounds, "rounds")
	assert.Equal(t, 500, c.Soak.Operations, "operations")
	assert.Equal(t, uint32(64), c.Soak.KeySpace, "key space")
	assert.Equal(t, []string{"btree"}, c.Soak.Oracles, "oracles")
	assert.Equal(t, 2, c.Soak.Weights.Insert, "insert weight")
	assert.Equal(t, 1, c.Soak.Weights.Erase, "erase weight")
	assert.Equal(t, 10, c.Soak.Weights.Index, "default index weight kept")

	assert.Equal(t, "soak.log", c.Logging.File, "log file")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, "debug", c.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(c.Logging.Directory)
	require.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestGetConfigurationDefaultOracles(t *testing.T) {
	dir, err := os.MkdirTemp("", "avlsoak")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	c, err := getConfiguration(writeFile(t, dir, "return { soak = { seed = 5 } }"), nil)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, int64(5), c.Soak.Seed, "seed")
	assert.Equal(t, []string{"memdb", "btree"}, c.Soak.Oracles, "oracles")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := os.MkdirTemp("", "avlsoak")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	_, err = getConfiguration(filepath.Join(dir, "missing.conf"), nil)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	_, err = getConfiguration(writeFile(t, dir, `return { data_directory = "" }`), nil)
	assert.NotNil(t, err, "empty data directory")

	_, err = getConfiguration(writeFile(t, dir, `return { logging = { file = "a/b.log" } }`), nil)
	assert.NotNil(t, err, "log file with path")
}
