// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/editor.go
// Summary: Interactive level editing session on a tcell screen.
// Usage: `texeledit edit <level>` builds an Editor and calls Run.

package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/framegrace/texeledit/internal/snapshot"
	"github.com/framegrace/texeledit/level"
	"github.com/framegrace/texeledit/texelui/color"
	"github.com/framegrace/texeledit/texelui/core"
	"github.com/framegrace/texeledit/texelui/widgets"
)

const helpText = "[tab] layer  [n] new  [s] save  [q] quit"

// Options configures an editing session.
type Options struct {
	// Path is where the level is saved.
	Path string
	// Document is the level being edited.
	Document *level.Document
	// Snapshots, if set, records every save.
	Snapshots *snapshot.Store
	Logger    hclog.Logger

	CellWidth  float64
	CellHeight float64
}

// Editor routes screen input to the active layer and redraws it.
type Editor struct {
	doc    *level.Document
	path   string
	store  *snapshot.Store
	logger hclog.Logger

	driver core.ScreenDriver
	vp     *core.Viewport

	status    string
	renderErr error
	dirty     bool
}

// New binds an editor to driver. The driver must already be initialised.
func New(driver core.ScreenDriver, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	doc := opts.Document
	if doc == nil {
		doc = level.NewDocument()
	}
	if doc.Len() == 0 {
		doc.Add(level.AsLayer(widgets.NewColorPicker()))
	}

	e := &Editor{
		doc:    doc,
		path:   opts.Path,
		store:  opts.Snapshots,
		logger: logger.Named("editor"),
		driver: driver,
		vp:     core.NewViewport(driver, opts.CellWidth, opts.CellHeight),
	}
	e.watchSelections()
	return e
}

func (e *Editor) watchSelections() {
	for i, l := range e.doc.Layers() {
		if cl, ok := l.(*level.ColorPickerLayer); ok && cl.OnSelect == nil {
			layer := i
			cl.OnSelect = func(idx int) {
				e.logger.Debug("palette pick", "layer", layer, "swatch", idx)
			}
		}
	}
}

// Document returns the level being edited.
func (e *Editor) Document() *level.Document { return e.doc }

// Dirty reports unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// Status returns the transient status message, led by the last render
// failure while one persists.
func (e *Editor) Status() string {
	if e.renderErr == nil {
		return e.status
	}
	msg := "render: " + e.renderErr.Error()
	if e.status != "" {
		msg += "  " + e.status
	}
	return msg
}

// Draw renders the active layer and the status line. A layer that fails to
// draw, typically because the terminal is too small, is reported in the
// status line until a later draw succeeds, rather than aborting the session.
func (e *Editor) Draw() {
	e.driver.Clear()
	err := e.doc.Render(e.vp)
	if err != nil && e.renderErr == nil {
		e.logger.Warn("render failed", "error", err)
	}
	e.renderErr = err
	e.drawStatus()
	e.driver.Show()
}

func (e *Editor) drawStatus() {
	_, rows := e.driver.Size()
	if rows == 0 {
		return
	}
	line := helpText
	if l, idx := e.doc.Active(); l != nil {
		line = fmt.Sprintf("layer %d/%d  %s  %s", idx+1, e.doc.Len(), describe(l), helpText)
	}
	if status := e.Status(); status != "" {
		line = status + "  " + line
	}
	_ = e.vp.DrawText(e.vp.CellCentre(0, rows-1), line, color.RGB(1, 1, 1))
}

func describe(l level.Layer) string {
	cl, ok := l.(*level.ColorPickerLayer)
	if !ok {
		return l.Kind().String()
	}
	return fmt.Sprintf("%s  H %.0f S %.2f L %.2f",
		cl.Color(), cl.Hue().Value, cl.Saturation().Value, cl.Lightness().Value)
}

// HandleEvent processes one screen event. quit is true when the user asked
// to leave. A layer failure ends the session with its error.
func (e *Editor) HandleEvent(ctx context.Context, ev tcell.Event) (quit bool, err error) {
	if key, ok := ev.(*tcell.EventKey); ok {
		if handled, quit := e.handleCommand(ctx, key); handled {
			return quit, nil
		}
	}

	wev, ok := e.vp.Translate(ev)
	if !ok {
		return false, nil
	}
	before := e.doc.String()
	if err := e.doc.HandleEvent(wev); err != nil {
		return true, fmt.Errorf("layer event: %w", err)
	}
	if e.doc.String() != before {
		e.dirty = true
	}
	return false, nil
}

func (e *Editor) handleCommand(ctx context.Context, key *tcell.EventKey) (handled, quit bool) {
	switch key.Key() {
	case tcell.KeyCtrlC:
		return true, true
	case tcell.KeyTab:
		e.doc.Cycle(1)
		e.status = ""
		return true, false
	case tcell.KeyBacktab:
		e.doc.Cycle(-1)
		e.status = ""
		return true, false
	case tcell.KeyRune:
	default:
		return false, false
	}

	if key.Modifiers()&tcell.ModCtrl != 0 && key.Rune() == 'c' {
		return true, true
	}
	switch key.Rune() {
	case 'q':
		return true, true
	case 's':
		if err := e.Save(ctx); err != nil {
			e.logger.Error("save failed", "path", e.path, "error", err)
			e.status = "save failed: " + err.Error()
		} else {
			e.status = "saved " + filepath.Base(e.path)
		}
		return true, false
	case 'n':
		cl := level.AsLayer(widgets.NewColorPicker())
		e.doc.Add(cl)
		e.watchSelections()
		e.dirty = true
		e.status = "added layer"
		return true, false
	}
	return false, false
}

// Save writes the level and, when configured, records a snapshot.
func (e *Editor) Save(ctx context.Context) error {
	if e.path == "" {
		return fmt.Errorf("no level path")
	}
	if err := e.doc.Save(e.path); err != nil {
		return err
	}
	e.dirty = false
	e.logger.Info("level saved", "path", e.path, "layers", e.doc.Len())

	if e.store == nil {
		return nil
	}
	key, err := filepath.Abs(e.path)
	if err != nil {
		key = e.path
	}
	if _, err := e.store.Save(ctx, key, e.doc.String()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
