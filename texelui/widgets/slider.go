// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider.go
// Summary: Horizontal slider bound to a ranged value.

package widgets

import (
	"errors"
	"fmt"

	"github.com/framegrace/texeledit/texelui/color"
	"github.com/framegrace/texeledit/texelui/core"
)

// ErrUnboundSlider is returned when a slider has no value to operate on.
var ErrUnboundSlider = errors.New("slider has no value")

const sliderThumbWidth = 10.0

// RangedValue is a scalar in [0, MaxValue].
type RangedValue struct {
	Value    float64
	MaxValue float64
}

// Set stores v clamped to [0, MaxValue].
func (r *RangedValue) Set(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > r.MaxValue:
		v = r.MaxValue
	}
	r.Value = v
}

// Fraction returns Value/MaxValue, or 0 for an empty range.
func (r RangedValue) Fraction() float64 {
	if r.MaxValue <= 0 {
		return 0
	}
	return r.Value / r.MaxValue
}

// Control is the contract ColorPicker needs from each of its sliders.
type Control interface {
	Render(surface core.Surface, rect core.Rect) error
	HandleEvent(ev core.Event, rect core.Rect) error
}

// Slider is a horizontal drag control. Pressing the primary button inside
// its rectangle jumps the value to the pointer and starts a drag; the drag
// follows motion anywhere on screen until the button is released.
type Slider struct {
	Value  *RangedValue
	Label  string
	Format func(v float64) string

	Track color.Color
	Fill  color.Color
	Thumb color.Color
	Text  color.Color

	dragging bool
}

// NewSlider creates a slider over v.
func NewSlider(label string, v *RangedValue) *Slider {
	return &Slider{
		Value: v,
		Label: label,
		Track: color.RGB(0.19, 0.19, 0.19),
		Fill:  color.RGB(0.45, 0.45, 0.45),
		Thumb: color.RGB(0.95, 0.95, 0.95),
		Text:  color.RGB(1, 1, 1),
	}
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// Render draws the track, the filled part up to the value, the thumb and,
// when the surface supports text, the label.
func (s *Slider) Render(surface core.Surface, rect core.Rect) error {
	if s.Value == nil {
		return ErrUnboundSlider
	}
	if err := surface.FillRect(rect, s.Track); err != nil {
		return err
	}

	filled := rect
	filled.W = rect.W * s.Value.Fraction()
	if err := surface.FillRect(filled, s.Fill); err != nil {
		return err
	}

	thumb := core.Rect{
		X: rect.X + filled.W - sliderThumbWidth/2,
		Y: rect.Y,
		W: sliderThumbWidth,
		H: rect.H,
	}
	if thumb.X < rect.X {
		thumb.X = rect.X
	}
	if thumb.X+thumb.W > rect.X+rect.W {
		thumb.X = rect.X + rect.W - thumb.W
	}
	if err := surface.FillRect(thumb, s.Thumb); err != nil {
		return err
	}

	if ts, ok := surface.(core.TextSurface); ok && s.Label != "" {
		return ts.DrawText(core.Vec{X: rect.X, Y: rect.Y}, s.text(), s.Text)
	}
	return nil
}

func (s *Slider) text() string {
	if s.Format != nil {
		return s.Label + " " + s.Format(s.Value.Value)
	}
	return fmt.Sprintf("%s %.2f", s.Label, s.Value.Value)
}

// HandleEvent updates the value from pointer input.
func (s *Slider) HandleEvent(ev core.Event, rect core.Rect) error {
	if s.Value == nil {
		return ErrUnboundSlider
	}

	switch e := ev.(type) {
	case core.MouseDown:
		if e.Button == core.ButtonPrimary && rect.Contains(e.Pos) {
			s.dragging = true
			s.setFromX(e.Pos.X, rect)
		}
	case core.MouseMotion:
		if s.dragging {
			s.setFromX(e.Pos.X, rect)
		}
	case core.MouseUp:
		if e.Button == core.ButtonPrimary {
			s.dragging = false
		}
	}
	return nil
}

func (s *Slider) setFromX(x float64, rect core.Rect) {
	if rect.W <= 0 {
		return
	}
	s.Value.Set((x - rect.X) / rect.W * s.Value.MaxValue)
}
