// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

func TestTableAlignsByCellWidth(t *testing.T) {
	table := NewTable("Name", "Hex", "Swatch")
	table.AddRow("red", "FF0000", "\x1b[41m  \x1b[0m")
	table.AddRow("緑", "00FF00")

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	// Both data rows start the Hex column at the same cell.
	if got := strings.Index(lines[2], "FF0000"); got != 6 {
		t.Errorf("red row Hex column at byte %d, want 6", got)
	}
	if got := strings.Index(lines[3], "00FF00"); got != len("緑")+2+2 {
		t.Errorf("wide row Hex column at byte %d", got)
	}
	if !strings.HasSuffix(lines[2], "\x1b[0m") {
		t.Errorf("last column must be written verbatim: %q", lines[2])
	}
}

func TestTableRowPadding(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("1")
	table.AddRow("1", "2", "3")
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	for _, row := range table.rows {
		if len(row) != 2 {
			t.Fatalf("row not fitted to headers: %v", row)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
