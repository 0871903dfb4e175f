// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/surface.go
// Summary: Drawing targets for widgets.

package core

import (
	"errors"

	"github.com/framegrace/texeledit/texelui/color"
)

var (
	// ErrNoScreen is returned when drawing on a viewport with no screen bound.
	ErrNoScreen = errors.New("viewport has no screen")
	// ErrOffscreen is returned when a rectangle lies entirely outside the screen.
	ErrOffscreen = errors.New("rectangle is off screen")
)

// Surface fills screen-space rectangles with a flat color.
type Surface interface {
	FillRect(r Rect, c color.Color) error
}

// TextSurface is a Surface that can also place short labels.
type TextSurface interface {
	Surface
	DrawText(pos Vec, text string, fg color.Color) error
}
