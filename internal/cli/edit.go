// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/edit.go
// Summary: The interactive edit command.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/framegrace/texeledit/internal/editor"
	"github.com/framegrace/texeledit/level"
)

// ErrNotTerminal is returned by edit when stdin or stdout is redirected.
var ErrNotTerminal = errors.New("edit needs an interactive terminal")

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <level>",
		Short: "Edit a level interactively",
		Long: `Open a level in the terminal editor. A missing file starts a new level.

Keys:
  tab / shift-tab  switch layer
  n                add a color picker layer
  s                save (and record a snapshot)
  q, ctrl-c        quit

Drag the H, S and L sliders or click a palette swatch to set a layer's color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd, args[0])
		},
	}
}

func (a *app) runEdit(cmd *cobra.Command, path string) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	doc, err := level.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Info("starting new level", "path", path)
		doc = level.NewDocument()
	case err != nil:
		return err
	}

	store, err := a.openSnapshots()
	if err != nil {
		a.logger.Warn("snapshots unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = editor.Run(ctx, editor.Options{
		Path:       path,
		Document:   doc,
		Snapshots:  store,
		Logger:     a.logger,
		CellWidth:  a.settings.CellWidth,
		CellHeight: a.settings.CellHeight,
	})
	if err != nil {
		return fmt.Errorf("edit %s: %w", path, err)
	}
	return nil
}
