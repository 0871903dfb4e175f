// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package color

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"red", "FF0000", RGB(1, 0, 0)},
		{"green lowercase", "00ff00", RGB(0, 1, 0)},
		{"blue", "0000FF", RGB(0, 0, 1)},
		{"white", "FFFFFF", RGB(1, 1, 1)},
		{"black", "000000", RGB(0, 0, 0)},
		{"grey", "808080", RGB(128.0/255, 128.0/255, 128.0/255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if !closeColor(got, tt.want, 1e-9) {
				t.Fatalf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexMalformed(t *testing.T) {
	for _, in := range []string{"", "FFF", "FF00000", "#FF000", "GG0000", "FF 000", "ff00zz"} {
		got, err := ParseHex(in)
		if err == nil {
			t.Fatalf("ParseHex(%q): expected error", in)
		}
		if !errors.Is(err, ErrMalformedColor) {
			t.Fatalf("ParseHex(%q): error %v does not match ErrMalformedColor", in, err)
		}
		var mce *MalformedColorError
		if !errors.As(err, &mce) || mce.Text != in {
			t.Fatalf("ParseHex(%q): expected *MalformedColorError carrying the input, got %v", in, err)
		}
		if got != Black {
			t.Fatalf("ParseHex(%q) = %+v, want deterministic Black", in, got)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Walk a lattice that touches every digit in every position.
	digits := "0123456789ABCDEF"
	for i := 0; i < len(digits); i++ {
		for j := 0; j < len(digits); j += 3 {
			for k := 0; k < len(digits); k += 5 {
				in := fmt.Sprintf("%c%c%c%c%c%c",
					digits[i], digits[j], digits[k], digits[15-i], digits[15-j], digits[15-k])
				c, err := ParseHex(in)
				if err != nil {
					t.Fatalf("ParseHex(%q): %v", in, err)
				}
				if got := c.Hex(); got != in {
					t.Fatalf("round trip %q -> %q", in, got)
				}
			}
		}
	}
}

func TestFromHSLKnownValues(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "FF0000"},
		{120, 1, 0.5, "00FF00"},
		{240, 1, 0.5, "0000FF"},
		{360, 1, 0.5, "FF0000"},
		{-120, 1, 0.5, "0000FF"},
		{60, 1, 0.5, "FFFF00"},
		{0, 0, 0.5, "808080"},
		{200, 0.5, 0, "000000"},
		{200, 0.5, 1, "FFFFFF"},
	}
	for _, tt := range tests {
		got := FromHSL(tt.h, tt.s, tt.l, 1)
		if got.Hex() != tt.want {
			t.Errorf("FromHSL(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got.Hex(), tt.want)
		}
		if got.A != 1 {
			t.Errorf("FromHSL alpha = %v, want 1", got.A)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	const tol = 1e-3
	for h := 0.0; h < 360; h += 7.5 {
		for s := 0.0; s <= 1.0; s += 0.125 {
			for l := 0.0; l <= 1.0; l += 0.125 {
				c := FromHSL(h, s, l, 1)
				gh, gs, gl := c.HSL()

				if math.Abs(gl-l) > tol {
					t.Fatalf("lightness %v -> %v (h=%v s=%v)", l, gl, h, s)
				}
				if l == 0 || l == 1 {
					continue
				}
				if math.Abs(gs-s) > tol {
					t.Fatalf("saturation %v -> %v (h=%v l=%v)", s, gs, h, l)
				}
				if s == 0 {
					continue
				}
				if d := hueDistance(gh, h); d > tol {
					t.Fatalf("hue %v -> %v (s=%v l=%v)", h, gh, s, l)
				}
			}
		}
	}
}

func TestTcell(t *testing.T) {
	c, _ := ParseHex("102030")
	if got, want := c.Tcell(), tcell.NewRGBColor(0x10, 0x20, 0x30); got != want {
		t.Fatalf("Tcell() = %v, want %v", got, want)
	}
}

func TestPaletteIsStable(t *testing.T) {
	if PaletteLen() != 3 {
		t.Fatalf("PaletteLen() = %d, want 3", PaletteLen())
	}
	want := []string{"FF0000", "00FF00", "0000FF"}
	for i, hex := range want {
		if got := PaletteAt(i).Hex(); got != hex {
			t.Fatalf("PaletteAt(%d) = %s, want %s", i, got, hex)
		}
	}

	copied := Palette()
	copied[0] = Black
	if PaletteAt(0) == Black {
		t.Fatalf("Palette() must return a copy")
	}
}

func closeColor(a, b Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
