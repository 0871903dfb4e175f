// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/geometry.go
// Summary: Screen-space rectangles and points.

package core

// Vec is a point in screen units.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so adjacent rectangles
// never both contain the same point.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether r and o share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
