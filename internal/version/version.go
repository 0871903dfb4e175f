// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/version/version.go
// Summary: Build-time version information.

package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/framegrace/texeledit/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the bare version.
func Short() string { return Version }

// String returns a one-line description of the build.
func String() string {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if Commit != "unknown" && Date != "unknown" {
		commit := Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("texeledit %s (commit %s, built %s, %s, %s)",
			Version, commit, Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("texeledit %s (%s, %s)", Version, runtime.Version(), platform)
}
