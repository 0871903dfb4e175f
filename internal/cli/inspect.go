// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/inspect.go
// Summary: Read-only listings of levels and the preset palette.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/framegrace/texeledit/level"
	"github.com/framegrace/texeledit/texelui/color"
)

func newInspectCmd(a *app) *cobra.Command {
	var noSwatch bool
	cmd := &cobra.Command{
		Use:   "inspect <level>",
		Short: "List the layers of a level",
		Long: `Print each layer of a level with its color in hex and HSL.
A truecolor swatch is shown when stdout is a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := level.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("inspect", "path", args[0], "layers", doc.Len())

			swatches := !noSwatch && stdoutIsTerminal(cmd.OutOrStdout())
			t := NewTable("Layer", "Kind", "Hex", "H", "S", "L", "Swatch")
			for i, l := range doc.Layers() {
				cl, ok := l.(*level.ColorPickerLayer)
				if !ok {
					t.AddRow(strconv.Itoa(i), l.Kind().String())
					continue
				}
				t.AddRow(append([]string{strconv.Itoa(i), l.Kind().String()}, colorCells(cl.Color(), swatches)...)...)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "never print color swatches")
	return cmd
}

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the preset palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			swatches := stdoutIsTerminal(cmd.OutOrStdout())
			t := NewTable("Index", "Hex", "H", "S", "L", "Swatch")
			for i, c := range color.Palette() {
				t.AddRow(append([]string{strconv.Itoa(i)}, colorCells(c, swatches)...)...)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

// colorCells returns the hex, H, S, L and swatch cells for c.
func colorCells(c color.Color, swatch bool) []string {
	h, s, l := c.HSL()
	cells := []string{
		c.Hex(),
		strconv.FormatFloat(h, 'f', 0, 64),
		strconv.FormatFloat(s, 'f', 2, 64),
		strconv.FormatFloat(l, 'f', 2, 64),
		"",
	}
	if swatch {
		r, g, b := c.RGB255()
		cells[4] = fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", r, g, b)
	}
	return cells
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the level files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			paths, err := level.ListLevels(dir)
			if err != nil {
				return err
			}
			t := NewTable("Level", "Layers")
			for _, p := range paths {
				layers := "?"
				if doc, err := level.Load(p); err != nil {
					a.logger.Warn("unreadable level", "path", p, "error", err)
				} else {
					layers = strconv.Itoa(doc.Len())
				}
				t.AddRow(p, layers)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
