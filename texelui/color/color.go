// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/color.go
// Summary: RGBA color value with hex and HSL conversions.

package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HexDigits is the length of a serialized color.
const HexDigits = 6

// ErrMalformedColor is matched by every error returned from ParseHex.
var ErrMalformedColor = errors.New("malformed color")

// MalformedColorError describes why a hex color could not be parsed.
type MalformedColorError struct {
	Text   string
	Reason string
}

func (e *MalformedColorError) Error() string {
	return fmt.Sprintf("malformed color %q: %s", e.Text, e.Reason)
}

func (e *MalformedColorError) Unwrap() error { return ErrMalformedColor }

// Color is a non-premultiplied color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Black is returned by ParseHex for input it cannot decode.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseHex decodes exactly six hex digits (RRGGBB) into an opaque color.
// On malformed input it returns Black together with a *MalformedColorError.
func ParseHex(text string) (Color, error) {
	if len(text) != HexDigits {
		return Black, &MalformedColorError{
			Text:   text,
			Reason: fmt.Sprintf("want %d hex digits, got %d characters", HexDigits, len(text)),
		}
	}
	for i := 0; i < len(text); i++ {
		if !isHexDigit(text[i]) {
			return Black, &MalformedColorError{
				Text:   text,
				Reason: fmt.Sprintf("invalid hex digit %q at offset %d", text[i], i),
			}
		}
	}

	c, err := colorful.Hex("#" + text)
	if err != nil {
		return Black, &MalformedColorError{Text: text, Reason: err.Error()}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// FromHSL converts hue (degrees), saturation and lightness to a color.
// Hue wraps modulo 360. Saturation and lightness are expected in [0, 1] and
// are not clamped.
func FromHSL(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, s, l)
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// HSL returns hue in [0, 360), saturation and lightness in [0, 1].
// Hue is meaningless when saturation is 0 or lightness is 0 or 1.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Hex encodes the RGB channels as six uppercase hex digits. Alpha is dropped.
func (c Color) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(c.colorful().Clamped().Hex(), "#"))
}

// RGB255 returns the channels quantized to bytes.
func (c Color) RGB255() (r, g, b uint8) {
	return c.colorful().Clamped().RGB255()
}

// Tcell converts the color to a truecolor tcell.Color.
func (c Color) Tcell() tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c Color) String() string {
	return "#" + c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
