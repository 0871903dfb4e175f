// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker.go
// Summary: Color picker widget with a preset palette row and HSL sliders.

package widgets

import (
	"fmt"
	"io"
	"strings"

	"github.com/framegrace/texeledit/internal/linestream"
	"github.com/framegrace/texeledit/texelui/color"
	"github.com/framegrace/texeledit/texelui/core"
)

// Layout in screen units. Swatches form one row at the origin; the sliders
// stack below it.
const (
	SwatchWidth  = 50.0
	SwatchHeight = 50.0
	SliderWidth  = 300.0
	SliderHeight = SwatchHeight
)

// SliderKind identifies one of the picker's sliders.
type SliderKind int

const (
	SliderHue SliderKind = iota
	SliderSaturation
	SliderLightness
	sliderCount
)

func (k SliderKind) String() string {
	switch k {
	case SliderHue:
		return "hue"
	case SliderSaturation:
		return "saturation"
	case SliderLightness:
		return "lightness"
	default:
		return fmt.Sprintf("slider(%d)", int(k))
	}
}

// Slider maxima.
const (
	HueMax        = 360.0
	SaturationMax = 1.0
	LightnessMax  = 1.0
)

// RenderError wraps a drawing failure with the part being drawn.
type RenderError struct {
	Part string
	Err  error
}

func (e *RenderError) Error() string { return "render " + e.Part + ": " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// EventError wraps a failure from a slider while handling an event.
type EventError struct {
	Part string
	Err  error
}

func (e *EventError) Error() string { return "event " + e.Part + ": " + e.Err.Error() }
func (e *EventError) Unwrap() error { return e.Err }

// EventResult reports what an event did to the picker.
type EventResult struct {
	// Selected is true when the event picked a palette swatch.
	Selected bool
	// PaletteIndex is the chosen swatch; only meaningful when Selected.
	PaletteIndex int
}

// Index returns the chosen swatch and whether one was chosen.
func (r EventResult) Index() (int, bool) {
	return r.PaletteIndex, r.Selected
}

// ColorPicker lets the user choose a color from the palette or by HSL.
//
// The color is recomputed from the sliders on every event. A palette click
// then overrides it without moving the sliders, so the next event reverts
// the color to the slider value.
type ColorPicker struct {
	hue        RangedValue
	saturation RangedValue
	lightness  RangedValue
	color      color.Color

	sliders [sliderCount]Control
}

// NewColorPicker returns a picker with all sliders at zero and an opaque
// black color.
func NewColorPicker() *ColorPicker {
	cp := &ColorPicker{color: color.Black}
	cp.resetSliders()
	return cp
}

func (cp *ColorPicker) resetSliders() {
	cp.hue = RangedValue{Value: 0, MaxValue: HueMax}
	cp.saturation = RangedValue{Value: 0, MaxValue: SaturationMax}
	cp.lightness = RangedValue{Value: 0, MaxValue: LightnessMax}

	hue := NewSlider("H", &cp.hue)
	hue.Format = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	cp.sliders = [sliderCount]Control{
		hue,
		NewSlider("S", &cp.saturation),
		NewSlider("L", &cp.lightness),
	}
}

// Deserialize reads one line from src. Its first whitespace-separated token
// is the color as six hex digits; the rest of the line is ignored. A
// malformed color is logged and the parser's fallback color is kept. A
// missing line is ErrEndOfInput; a line src could not read is its read error.
func Deserialize(src linestream.Source) (*ColorPicker, error) {
	line, ok := src.Next()
	if !ok {
		if err := linestream.Err(src); err != nil {
			return nil, fmt.Errorf("color picker: %w", err)
		}
		return nil, fmt.Errorf("color picker: %w", linestream.ErrEndOfInput)
	}

	var token string
	if fields := strings.Fields(line); len(fields) > 0 {
		token = fields[0]
	}

	c, err := color.ParseHex(token)
	if err != nil {
		Logger().Warn("could not read color", "line", line, "error", err)
	}

	cp := &ColorPicker{color: c}
	cp.resetSliders()
	return cp, nil
}

// Serialize writes the color as a single line.
func (cp *ColorPicker) Serialize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", cp.color.Hex())
	return err
}

// Color returns the current color.
func (cp *ColorPicker) Color() color.Color { return cp.color }

// Hue returns the hue slider state.
func (cp *ColorPicker) Hue() RangedValue { return cp.hue }

// Saturation returns the saturation slider state.
func (cp *ColorPicker) Saturation() RangedValue { return cp.saturation }

// Lightness returns the lightness slider state.
func (cp *ColorPicker) Lightness() RangedValue { return cp.lightness }

// SwatchRect returns the rectangle of palette swatch i.
func SwatchRect(i int) core.Rect {
	return core.Rect{X: SwatchWidth * float64(i), Y: 0, W: SwatchWidth, H: SwatchHeight}
}

// SliderRect returns the rectangle of slider k.
func SliderRect(k SliderKind) core.Rect {
	return core.Rect{X: 0, Y: SwatchHeight * float64(k+1), W: SliderWidth, H: SliderHeight}
}

// Bounds returns the rectangle enclosing the whole picker.
func Bounds() core.Rect {
	w := SwatchWidth * float64(color.PaletteLen())
	if w < SliderWidth {
		w = SliderWidth
	}
	return core.Rect{W: w, H: SwatchHeight + SliderHeight*float64(sliderCount)}
}

// Render draws the palette row and then the hue, saturation and lightness
// sliders. The first failure stops drawing.
func (cp *ColorPicker) Render(surface core.Surface) error {
	for i := 0; i < color.PaletteLen(); i++ {
		if err := surface.FillRect(SwatchRect(i), color.PaletteAt(i)); err != nil {
			return &RenderError{Part: fmt.Sprintf("swatch %d", i), Err: err}
		}
	}

	for k := SliderKind(0); k < sliderCount; k++ {
		if err := cp.sliders[k].Render(surface, SliderRect(k)); err != nil {
			return &RenderError{Part: k.String() + " slider", Err: err}
		}
	}
	return nil
}

// HandleEvent forwards ev to the sliders, recomputes the color from them and
// then applies a palette click if ev is a primary press on a swatch.
func (cp *ColorPicker) HandleEvent(ev core.Event) (EventResult, error) {
	for k := SliderKind(0); k < sliderCount; k++ {
		if err := cp.sliders[k].HandleEvent(ev, SliderRect(k)); err != nil {
			return EventResult{}, &EventError{Part: k.String() + " slider", Err: err}
		}
	}

	cp.color = color.FromHSL(cp.hue.Value, cp.saturation.Value, cp.lightness.Value, 1)

	down, ok := ev.(core.MouseDown)
	if !ok || down.Button != core.ButtonPrimary {
		return EventResult{}, nil
	}
	for i := 0; i < color.PaletteLen(); i++ {
		if SwatchRect(i).Contains(down.Pos) {
			cp.color = color.PaletteAt(i)
			Logger().Debug("palette swatch selected", "index", i, "color", cp.color.String())
			return EventResult{Selected: true, PaletteIndex: i}, nil
		}
	}
	return EventResult{}, nil
}
