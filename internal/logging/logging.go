// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logging.go
// Summary: Root logger construction for the texeledit commands.
// Usage: The CLI builds one logger and hands named children to packages.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Options selects where and how much to log.
type Options struct {
	// Level is an hclog level name ("trace", "debug", "info", "warn", "error", "off").
	Level string
	// File, when set, receives the log instead of Output.
	File string
	// Output is used when File is empty. Nil discards.
	Output io.Writer
	// Verbose forces debug level.
	Verbose bool
}

// New returns the root logger and a closer for any file it opened.
func New(opts Options) (hclog.Logger, io.Closer, error) {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	if opts.Verbose {
		level = hclog.Debug
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) // #nosec G304 - path from config or flags
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case opts.Output != nil:
		out = opts.Output
	default:
		level = hclog.Off
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "texeledit",
		Output: out,
		Level:  level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
