// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/runner.go
// Summary: Screen lifecycle and event loop for an editing session.

package editor

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeledit/texelui/core"
)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run opens a screen and edits opts.Document until the user quits, ctx is
// cancelled, or a layer fails.
func Run(ctx context.Context, opts Options) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	driver := core.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer driver.Fini()
	driver.EnableMouse(tcell.MouseDragEvents)
	defer driver.DisableMouse()

	ed := New(driver, opts)
	ed.Draw()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = driver.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		ev := driver.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			continue
		case *tcell.EventResize:
			ed.Draw()
			continue
		}

		quit, err := ed.HandleEvent(ctx, ev)
		if err != nil {
			return err
		}
		if quit {
			if ed.Dirty() {
				ed.logger.Info("quit with unsaved changes", "path", ed.path)
			}
			return nil
		}
		ed.Draw()
	}
}
