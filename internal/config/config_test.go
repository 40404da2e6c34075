// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points LINECMP_CFG_FILE at a testdata file, resets the global
// Config and executes fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv("LINECMP_CFG_FILE", absPath)

	Reset()
	defer Reset()
	fn(t)
}

func TestLoad(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Contains(t, cfg.Source, "simple.yaml")
		assert.Equal(t, true, cfg.Data["case-sensitive"])
		assert.Equal(t, "json", cfg.Data["output"])
	})
}

func TestLoad_Empty(t *testing.T) {
	withConfig(t, "empty.yaml", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.Source)
		assert.Empty(t, cfg.Data)
	})
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("LINECMP_CFG_FILE", "/nonexistent/path/linecmp.yaml")
	Reset()

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("LINECMP_CFG_FILE", "testdata")
	Reset()

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestFile_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINECMP_CFG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	_, err := File()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestGetters(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		defaults, err := GetStringSlice("defaults")
		require.NoError(t, err)
		assert.Equal(t, []string{"--case-sensitive", "--output yaml"}, defaults)

		color, err := GetString("colors.missing")
		require.NoError(t, err)
		assert.Equal(t, "#c80000", color)

		color, err = GetString("colors.absent", "#123456")
		require.NoError(t, err)
		assert.Equal(t, "#123456", color)

		_, err = GetString("colors.absent")
		assert.Error(t, err)

		b, err := GetBool("case-sensitive", true)
		require.NoError(t, err)
		assert.True(t, b)

		s, err := GetStringSlice("nothing", []string{"x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, s)
	})
}

func TestGetters_WrongTypes(t *testing.T) {
	withConfig(t, "bad-types.yaml", func(t *testing.T) {
		_, err := GetString("output")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetBool("case-sensitive")
		assert.ErrorContains(t, err, "not a bool")

		_, err = GetStringSlice("defaults")
		assert.ErrorContains(t, err, "element 1")

		_, err = GetStringSlice("output")
		assert.ErrorContains(t, err, "not a slice")

		_, err = GetString("colors.missing")
		assert.Error(t, err)
	})
}

func TestLookup_LoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linecmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0o600))
	t.Setenv("LINECMP_CFG_FILE", path)
	Reset()
	defer Reset()

	output, err := GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "yaml", output)

	// The file is gone but the first load is remembered.
	require.NoError(t, os.Remove(path))
	output, err = GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "yaml", output)

	Reset()
	_, err = GetString("output")
	assert.ErrorContains(t, err, "config file not found")
}

func TestLookup_ReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linecmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o600))
	t.Setenv("LINECMP_CFG_FILE", path)
	Reset()
	defer Reset()

	_, err := GetString("output")
	assert.ErrorContains(t, err, "failed to parse config")

	output, err := GetString("output", "text")
	require.NoError(t, err)
	assert.Equal(t, "text", output)
}

func TestLookup_NoConfigIsMissingKey(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINECMP_CFG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	Reset()
	defer Reset()

	_, err := GetString("output")
	assert.ErrorContains(t, err, "no value found for output")
	assert.False(t, Explicit())
}
