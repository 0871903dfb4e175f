// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/viewport.go
// Summary: Maps screen units onto terminal cells for drawing and input.
// Usage: The editor binds one Viewport to its screen and hands it to layers.

package core

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeledit/texelui/color"
)

// Default terminal cell size in screen units.
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 25.0
)

// Viewport draws screen-unit rectangles onto a character grid. Each cell
// covers CellW x CellH screen units; Origin is the screen-unit position of
// cell (0, 0).
type Viewport struct {
	driver ScreenDriver
	CellW  float64
	CellH  float64
	Origin Vec

	held Button
}

// NewViewport binds a viewport to driver. Non-positive cell sizes fall back
// to the defaults.
func NewViewport(driver ScreenDriver, cellW, cellH float64) *Viewport {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Viewport{driver: driver, CellW: cellW, CellH: cellH}
}

// CellBounds returns the half-open cell range covered by r, clipped to the
// screen. ok is false when nothing remains after clipping.
func (v *Viewport) CellBounds(r Rect) (x0, y0, x1, y1 int, ok bool) {
	cols, rows := v.driver.Size()
	x0 = int(math.Floor((r.X - v.Origin.X) / v.CellW))
	y0 = int(math.Floor((r.Y - v.Origin.Y) / v.CellH))
	x1 = int(math.Ceil((r.X + r.W - v.Origin.X) / v.CellW))
	y1 = int(math.Ceil((r.Y + r.H - v.Origin.Y) / v.CellH))

	x0, x1 = max(x0, 0), min(x1, cols)
	y0, y1 = max(y0, 0), min(y1, rows)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

// FillRect paints every cell touched by r with c as background.
func (v *Viewport) FillRect(r Rect, c color.Color) error {
	if v.driver == nil {
		return ErrNoScreen
	}
	if r.Empty() {
		return nil
	}
	x0, y0, x1, y1, ok := v.CellBounds(r)
	if !ok {
		return fmt.Errorf("fill %+v: %w", r, ErrOffscreen)
	}

	style := tcell.StyleDefault.Background(c.Tcell())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.driver.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

// DrawText writes text starting at the cell containing pos, keeping each
// cell's existing background. Text is truncated at the right screen edge.
func (v *Viewport) DrawText(pos Vec, text string, fg color.Color) error {
	if v.driver == nil {
		return ErrNoScreen
	}
	cols, rows := v.driver.Size()
	x, y := v.cellAt(pos)
	if y < 0 || y >= rows || x < 0 || x >= cols {
		return fmt.Errorf("text at %+v: %w", pos, ErrOffscreen)
	}

	text = runewidth.Truncate(text, cols-x, "")
	for _, r := range text {
		_, _, style, _ := v.driver.GetContent(x, y)
		v.driver.SetContent(x, y, r, nil, style.Foreground(fg.Tcell()))
		x += runewidth.RuneWidth(r)
	}
	return nil
}

// Translate converts a tcell event into a widget event. Mouse positions map
// to the centre of the reported cell. Press and release are derived from
// changes in the held button since tcell reports button state, not edges.
func (v *Viewport) Translate(ev tcell.Event) (Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		x, y := tev.Position()
		pos := v.CellCentre(x, y)
		btn := buttonFromMask(tev.Buttons())

		switch {
		case btn != ButtonNone && v.held == ButtonNone:
			v.held = btn
			return MouseDown{Button: btn, Pos: pos}, true
		case btn == ButtonNone && v.held != ButtonNone:
			released := v.held
			v.held = ButtonNone
			return MouseUp{Button: released, Pos: pos}, true
		default:
			return MouseMotion{Pos: pos, Held: v.held}, true
		}
	case *tcell.EventKey:
		return KeyPress{Key: tev.Key(), Rune: tev.Rune(), Mod: tev.Modifiers()}, true
	}
	return nil, false
}

// CellCentre returns the screen-unit centre of cell (x, y).
func (v *Viewport) CellCentre(x, y int) Vec {
	return Vec{
		X: v.Origin.X + (float64(x)+0.5)*v.CellW,
		Y: v.Origin.Y + (float64(y)+0.5)*v.CellH,
	}
}

func (v *Viewport) cellAt(p Vec) (int, int) {
	return int(math.Floor((p.X - v.Origin.X) / v.CellW)),
		int(math.Floor((p.Y - v.Origin.Y) / v.CellH))
}

func buttonFromMask(mask tcell.ButtonMask) Button {
	switch {
	case mask&tcell.Button1 != 0:
		return ButtonPrimary
	case mask&tcell.Button2 != 0:
		return ButtonSecondary
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	}
	return ButtonNone
}
