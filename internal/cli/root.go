// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/root.go
// Summary: Root command, global flags and shared session state.

// Package cli implements the texeledit command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texeledit/config"
	"github.com/framegrace/texeledit/internal/logging"
	"github.com/framegrace/texeledit/internal/snapshot"
	"github.com/framegrace/texeledit/internal/version"
	"github.com/framegrace/texeledit/texelui/widgets"
)

// isTerminal reports whether fd is a terminal. Tests replace it.
var isTerminal = term.IsTerminal

// app holds state resolved once per invocation by the root command.
type app struct {
	verbose    bool
	logLevel   logLevel
	logFile    string
	configPath string

	cfg      config.Config
	settings config.Settings
	logger   hclog.Logger
	closer   io.Closer
}

// NewRootCmd builds the texeledit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "texeledit",
		Short: "Terminal level editor",
		Long: `texeledit edits level files made of color picker layers.

Each line of a level file holds one layer's color as six hex digits.
Files ending in .xz are read and written compressed.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The editor owns the terminal, so it only logs to a file.
			return a.setup(cmd, cmd.Name() != "edit")
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Var(&a.logLevel, "log-level", "log level (default from config)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default: user config dir)")
	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		newEditCmd(a),
		newInspectCmd(a),
		newListCmd(a),
		newHistoryCmd(a),
		newPaletteCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, logToStderr bool) error {
	// A broken config file still yields defaults; report it once logging is up.
	cfg, path, cfgErr := config.Load(a.configPath)
	a.cfg = cfg
	a.settings = cfg.Settings()

	opts := logging.Options{
		Level:   a.settings.LogLevel,
		File:    a.settings.LogFile,
		Verbose: a.verbose,
	}
	if a.logLevel != "" {
		opts.Level = string(a.logLevel)
	}
	if a.logFile != "" {
		opts.File = a.logFile
	}
	if logToStderr {
		opts.Output = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	a.logger, a.closer = logger, closer
	widgets.SetLogger(logger)
	if cfgErr != nil {
		logger.Warn("using default config", "path", path, "error", cfgErr)
	} else {
		logger.Debug("config loaded", "path", path)
	}
	return nil
}

func (a *app) teardown() error {
	widgets.SetLogger(nil)
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// openSnapshots opens the snapshot store, or returns nil when snapshots are
// disabled.
func (a *app) openSnapshots() (*snapshot.Store, error) {
	if !a.settings.SnapshotsEnabled {
		return nil, nil
	}
	if a.settings.SnapshotPath == "" {
		return nil, fmt.Errorf("no snapshot path configured")
	}
	return snapshot.Open(a.settings.SnapshotPath, a.logger)
}

// stdoutIsTerminal reports whether w is a terminal.
func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
