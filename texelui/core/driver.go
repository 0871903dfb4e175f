// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/driver.go
// Summary: Narrow screen interface and its tcell adapter.
// Usage: Wrapped by Viewport; tests substitute a simulation screen.

package core

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the subset of tcell.Screen the viewport and editor loop use.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	Clear()
	Show()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
	EnableMouse(flags ...tcell.MouseFlags)
	DisableMouse()
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error { return d.screen.Init() }

func (d *TcellScreenDriver) Fini() { d.screen.Fini() }

func (d *TcellScreenDriver) Size() (int, int) { return d.screen.Size() }

func (d *TcellScreenDriver) Clear() { d.screen.Clear() }

func (d *TcellScreenDriver) Show() { d.screen.Show() }

func (d *TcellScreenDriver) PollEvent() tcell.Event { return d.screen.PollEvent() }

func (d *TcellScreenDriver) PostEvent(ev tcell.Event) error { return d.screen.PostEvent(ev) }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellScreenDriver) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return d.screen.GetContent(x, y)
}

func (d *TcellScreenDriver) EnableMouse(flags ...tcell.MouseFlags) { d.screen.EnableMouse(flags...) }

func (d *TcellScreenDriver) DisableMouse() { d.screen.DisableMouse() }
