// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/logger.go
// Summary: Package logger used for non-fatal widget diagnostics.

package widgets

import (
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

type loggerBox struct{ hclog.Logger }

var loggerPtr atomic.Pointer[loggerBox]

func init() {
	loggerPtr.Store(&loggerBox{hclog.NewNullLogger()})
}

// SetLogger sets the logger used by all widgets. By default widgets log
// nothing. Passing nil restores the silent default.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	loggerPtr.Store(&loggerBox{l.Named("widgets")})
}

// Logger returns the current widget logger.
func Logger() hclog.Logger {
	return loggerPtr.Load().Logger
}
