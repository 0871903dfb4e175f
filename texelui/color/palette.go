// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/palette.go
// Summary: Preset colors offered as one-click swatches.

package color

// palette is shared read-only by every picker and never written after init.
var palette = [...]Color{
	RGB(1, 0, 0),
	RGB(0, 1, 0),
	RGB(0, 0, 1),
}

// PaletteLen returns the number of preset colors.
func PaletteLen() int { return len(palette) }

// PaletteAt returns preset i. It panics when i is out of range.
func PaletteAt(i int) Color { return palette[i] }

// Palette returns a copy of the presets in swatch order.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])
	return out
}
