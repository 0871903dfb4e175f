// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/history.go
// Summary: Listing, showing and restoring level snapshots.

package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/framegrace/texeledit/internal/linestream"
	"github.com/framegrace/texeledit/internal/snapshot"
	"github.com/framegrace/texeledit/level"
)

// ErrSnapshotsDisabled is returned by history when snapshots are turned off
// in the config.
var ErrSnapshotsDisabled = errors.New("snapshots are disabled")

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit   int
		show    int64
		restore int64
	)
	cmd := &cobra.Command{
		Use:   "history <level>",
		Short: "List or restore saved versions of a level",
		Long: `Every save from the editor records a snapshot of the level.

Examples:
  # List the 20 newest snapshots
  texeledit history levels/level1.txt

  # Print a snapshot
  texeledit history --show 12 levels/level1.txt

  # Overwrite the level with a snapshot
  texeledit history --restore 12 levels/level1.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openSnapshots()
			if err != nil {
				return err
			}
			if store == nil {
				return ErrSnapshotsDisabled
			}
			defer store.Close()

			path := args[0]
			key, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case restore > 0:
				return a.restoreSnapshot(cmd, store, key, path, restore)
			case show > 0:
				snap, err := getSnapshot(cmd, store, key, show)
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, snap.Content)
				return err
			}

			snaps, err := store.List(cmd.Context(), key, limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintf(out, "no snapshots for %s\n", path)
				return nil
			}
			t := NewTable("ID", "Saved", "Layers", "First")
			for _, s := range snaps {
				lines := strings.Split(strings.TrimRight(s.Content, "\n"), "\n")
				t.AddRow(
					strconv.FormatInt(s.ID, 10),
					s.SavedAt.Local().Format(time.DateTime),
					strconv.Itoa(len(lines)),
					lines[0],
				)
			}
			_, err = io.WriteString(out, t.Render())
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum snapshots to list")
	cmd.Flags().Int64Var(&show, "show", 0, "print the snapshot with this ID")
	cmd.Flags().Int64Var(&restore, "restore", 0, "overwrite the level with the snapshot with this ID")
	cmd.MarkFlagsMutuallyExclusive("show", "restore")
	return cmd
}

func getSnapshot(cmd *cobra.Command, store *snapshot.Store, key string, id int64) (snapshot.Snapshot, error) {
	snap, err := store.Get(cmd.Context(), id)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	if snap.Level != key {
		return snapshot.Snapshot{}, fmt.Errorf("snapshot %d belongs to %s", id, snap.Level)
	}
	return snap, nil
}

func (a *app) restoreSnapshot(cmd *cobra.Command, store *snapshot.Store, key, path string, id int64) error {
	snap, err := getSnapshot(cmd, store, key, id)
	if err != nil {
		return err
	}
	src := linestream.FromString(snap.Content)
	doc, err := level.ReadDocument(src)
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		return fmt.Errorf("snapshot %d: %w", id, err)
	}
	if err := doc.Save(path); err != nil {
		return err
	}
	a.logger.Info("snapshot restored", "id", id, "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "restored snapshot %d to %s\n", id, path)
	return nil
}
