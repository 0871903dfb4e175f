// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: level/layer.go
// Summary: Editor layers and the color picker layer.

package level

import (
	"io"

	"github.com/framegrace/texeledit/texelui/core"
	"github.com/framegrace/texeledit/texelui/widgets"
)

// Kind identifies the widget behind a layer.
type Kind int

const (
	KindColorPicker Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindColorPicker:
		return "color-picker"
	default:
		return "unknown"
	}
}

// Layer is one editable element of a level.
type Layer interface {
	Kind() Kind
	Render(surface core.Surface) error
	HandleEvent(ev core.Event) error
	Serialize(w io.Writer) error
}

// ColorPickerLayer exposes a ColorPicker as a Layer.
type ColorPickerLayer struct {
	*widgets.ColorPicker

	// OnSelect, if set, is called with the swatch index after a palette click.
	OnSelect func(index int)
}

// AsLayer wraps cp.
func AsLayer(cp *widgets.ColorPicker) *ColorPickerLayer {
	return &ColorPickerLayer{ColorPicker: cp}
}

func (l *ColorPickerLayer) Kind() Kind { return KindColorPicker }

// HandleEvent forwards ev to the picker and reports palette selections
// through OnSelect.
func (l *ColorPickerLayer) HandleEvent(ev core.Event) error {
	res, err := l.ColorPicker.HandleEvent(ev)
	if err != nil {
		return err
	}
	if idx, ok := res.Index(); ok && l.OnSelect != nil {
		l.OnSelect(idx)
	}
	return nil
}
