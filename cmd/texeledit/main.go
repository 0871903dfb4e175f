// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeledit/main.go
// Summary: Entry point for the texeledit level editor.
// Usage: `texeledit edit levels/level1.txt`

package main

import (
	"os"

	"github.com/framegrace/texeledit/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
