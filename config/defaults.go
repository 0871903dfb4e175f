// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("editor", Section{
		"cell_width":  10.0,
		"cell_height": 25.0,
	})
	cfg.RegisterDefaults("snapshots", Section{
		"enabled": true,
		"path":    "",
	})
	cfg.RegisterDefaults("log", Section{
		"level": "info",
		"file":  "",
	})
}
