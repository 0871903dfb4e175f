// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed view of the configuration used by the editor.

package config

// Settings is the resolved configuration.
type Settings struct {
	CellWidth        float64
	CellHeight       float64
	SnapshotsEnabled bool
	SnapshotPath     string
	LogLevel         string
	LogFile          string
}

// Settings resolves the typed settings, filling the snapshot path from
// DefaultSnapshotPath when unset.
func (c Config) Settings() Settings {
	s := Settings{
		CellWidth:        c.GetFloat("editor", "cell_width", 10),
		CellHeight:       c.GetFloat("editor", "cell_height", 25),
		SnapshotsEnabled: c.GetBool("snapshots", "enabled", true),
		SnapshotPath:     c.GetString("snapshots", "path", ""),
		LogLevel:         c.GetString("log", "level", "info"),
		LogFile:          c.GetString("log", "file", ""),
	}
	if s.SnapshotPath == "" {
		if p, err := DefaultSnapshotPath(); err == nil {
			s.SnapshotPath = p
		}
	}
	return s
}

// Set stores value under section/key, creating the section if needed.
func (c Config) Set(sectionName, key string, value interface{}) {
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		c[sectionName] = section
	}
	section[key] = value
}
