// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/event.go
// Summary: Input events delivered to widgets.

package core

import "github.com/gdamore/tcell/v2"

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Event is one input event. The concrete types below are the only
// implementations.
type Event interface {
	isEvent()
}

// MouseDown is a button press at Pos.
type MouseDown struct {
	Button Button
	Pos    Vec
}

// MouseUp is a button release at Pos.
type MouseUp struct {
	Button Button
	Pos    Vec
}

// MouseMotion is pointer movement. Held is the button still pressed, if any.
type MouseMotion struct {
	Pos  Vec
	Held Button
}

// KeyPress is a keyboard event.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Tick is a timer event that carries no input.
type Tick struct{}

func (MouseDown) isEvent()   {}
func (MouseUp) isEvent()     {}
func (MouseMotion) isEvent() {}
func (KeyPress) isEvent()    {}
func (Tick) isEvent()        {}
