// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "snapshots.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.Latest(ctx, "a.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, content := range []string{"FF0000\n", "FF0000\n", "00FF00\n"} {
		if _, err := s.Save(ctx, "a.txt", content); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if _, err := s.Save(ctx, "b.txt", "0000FF\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := s.List(ctx, "a.txt", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected duplicate save to be collapsed, got %d snapshots", len(list))
	}
	if list[0].Content != "00FF00\n" || list[1].Content != "FF0000\n" {
		t.Fatalf("unexpected order: %+v", list)
	}

	latest, err := s.Latest(ctx, "a.txt")
	if err != nil || latest.Content != "00FF00\n" {
		t.Fatalf("Latest() = %+v, %v", latest, err)
	}

	got, err := s.Get(ctx, list[1].ID)
	if err != nil || got.Content != "FF0000\n" || got.Level != "a.txt" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}
	if _, err := s.Get(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestSaveReportsWrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	wrote, err := s.Save(ctx, "lvl", "123456\n")
	if err != nil || !wrote {
		t.Fatalf("first Save() = %v, %v", wrote, err)
	}
	wrote, err = s.Save(ctx, "lvl", "123456\n")
	if err != nil || wrote {
		t.Fatalf("repeat Save() = %v, %v; want no write", wrote, err)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Save(ctx, "lvl", "ABCDEF\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	s, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	latest, err := s.Latest(ctx, "lvl")
	if err != nil || latest.Content != "ABCDEF\n" {
		t.Fatalf("Latest() after reopen = %+v, %v", latest, err)
	}
}
