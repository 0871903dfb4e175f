// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Section lookup and typed getters.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section, or nil if it is missing or not an object.
func (c Config) Section(name string) Section {
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills keys missing from the named section, creating it
// when absent. Values already present are left alone.
func (c Config) RegisterDefaults(name string, defaults Section) {
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(name, key string) (interface{}, bool) {
	section := c.Section(name)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// GetString returns section.key as a string, or def.
func (c Config) GetString(name, key, def string) string {
	if s, ok := lookupAs[string](c, name, key); ok {
		return s
	}
	return def
}

// GetFloat returns section.key as a number, or def. Numeric strings are
// accepted.
func (c Config) GetFloat(name, key string, def float64) float64 {
	v, ok := c.lookup(name, key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return def
}

// GetBool returns section.key as a bool, or def. "true"/"false" strings and
// non-zero numbers are accepted.
func (c Config) GetBool(name, key string, def bool) bool {
	v, ok := c.lookup(name, key)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return def
}

func lookupAs[T any](c Config, name, key string) (T, bool) {
	var zero T
	v, ok := c.lookup(name, key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
