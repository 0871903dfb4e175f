// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration file for texeledit.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configName = "texeledit.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Load reads the config at path, or the default location when path is
// empty. A missing file is created with defaults. Defaults are filled in for
// any key the file does not set. On a read or parse error the returned
// config holds defaults only, alongside the error.
func Load(path string) (Config, string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg := make(Config)
			applyDefaults(cfg)
			return cfg, "", err
		}
		path = p
	}

	cfg, exists, err := readConfig(path)
	if err != nil {
		cfg = make(Config)
		applyDefaults(cfg)
		return cfg, path, err
	}
	if cfg == nil {
		cfg = make(Config)
	}
	applyDefaults(cfg)

	if !exists {
		if err := writeConfig(path, cfg); err != nil {
			return cfg, path, err
		}
	}
	return cfg, path, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	return writeConfig(path, cfg)
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
