// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/flags.go
// Summary: Custom flag values.

package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
)

// logLevel is a --log-level value restricted to hclog level names. The
// empty value defers to the config file.
type logLevel string

var _ pflag.Value = (*logLevel)(nil)

func (l *logLevel) String() string { return string(*l) }

func (l *logLevel) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error or off)", s)
	}
	*l = logLevel(s)
	return nil
}

func (l *logLevel) Type() string { return "level" }
