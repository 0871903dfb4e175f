// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/table.go
// Summary: Column-aligned text tables for command output.

package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table formats rows into aligned columns. Widths are measured in terminal
// cells. The last column is never padded, so it may hold escape sequences.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, padding: 2}
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row[:len(row)-1] {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sep := strings.Repeat(" ", t.padding)
	writeRow := func(row []string) {
		last := len(row) - 1
		for i, cell := range row {
			if i == last {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString(sep)
		}
		sb.WriteString("\n")
	}

	writeRow(t.headers)
	rule := make([]string, len(t.headers))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeRow(rule)
	for _, row := range t.rows {
		writeRow(row)
	}
	return sb.String()
}
