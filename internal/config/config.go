// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linecmp/linecmp/internal/log"
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source string
	Data   map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// loaded and loadErr record the outcome of the first Load so lookups neither
// re-read the file nor lose the error.
var (
	loaded  bool
	loadErr error
)

// ErrNoConfig is returned when no config file could be located.
var ErrNoConfig = errors.New("no config file found in standard locations")

// GetBool returns the boolean value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("value of %s is not a bool", key)
	}
	return b, nil
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value of %s is not a string", key)
	}
	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// If the key is not found and a single default slice is provided, that default
// is returned. Returns an error if the value exists but is not a string slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("value of %s is not a slice", key)
	}
	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d of %s is not a string", i, key)
		}
		result[i] = s
	}
	return result, nil
}

// Load reads the YAML configuration file and populates the global Config.
// Returns ErrNoConfig when there is no file to read.
func Load() (Type, error) {
	Config, loadErr = read()
	loaded = true
	return Config, loadErr
}

// Reset forgets the loaded configuration so the next lookup loads again.
func Reset() {
	Config = Type{}
	loaded = false
	loadErr = nil
}

// Explicit reports whether the config path was chosen with LINECMP_CFG_FILE.
func Explicit() bool {
	return os.Getenv("LINECMP_CFG_FILE") != ""
}

func read() (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return Type{Source: path, Data: data}, nil
}

// File returns the path to the YAML config file. If the LINECMP_CFG_FILE
// environment variable is set, it is treated as the full path to the config
// file. Otherwise "linecmp.yaml" in os.UserConfigDir is used. The file must
// exist and not be a directory.
func File() (string, error) {
	if cfgPath := os.Getenv("LINECMP_CFG_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at LINECMP_CFG_FILE path: %s", cfgPath)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("LINECMP_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from LINECMP_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "linecmp.yaml")
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", ErrNoConfig
}

// lookup loads the config on first use and returns the raw value at key. A
// config that failed to load for a reason other than being absent is
// reported instead of a missing key.
func lookup(key string) (any, error) {
	if !loaded {
		_, _ = Load()
	}
	if loadErr != nil && !errors.Is(loadErr, ErrNoConfig) {
		return nil, loadErr
	}
	return Config.get(key)
}

// get traverses the configuration tree using a dotted key path (e.g.
// "colors.missing").
func (cfg *Type) get(kspec string) (any, error) {
	var current interface{} = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value found for %s", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value found for %s", kspec)
		}
	}
	return current, nil
}
