// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeledit/internal/linestream"
	"github.com/framegrace/texeledit/internal/snapshot"
	"github.com/framegrace/texeledit/level"
	"github.com/framegrace/texeledit/texelui/core"
)

func newSimEditor(t *testing.T, opts Options) (*Editor, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 10)
	return New(core.NewTcellScreenDriver(screen), opts), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestNewSeedsEmptyDocument(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	if ed.Document().Len() != 1 {
		t.Fatalf("expected one seeded layer, got %d", ed.Document().Len())
	}
	if ed.Dirty() {
		t.Fatalf("fresh editor should not be dirty")
	}
}

func TestCommandsCycleAndAddLayers(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	ctx := context.Background()

	if quit, err := ed.HandleEvent(ctx, key('n')); quit || err != nil {
		t.Fatalf("add layer: quit=%v err=%v", quit, err)
	}
	if _, idx := ed.Document().Active(); idx != 1 {
		t.Fatalf("new layer should be active, got %d", idx)
	}
	if !ed.Dirty() {
		t.Fatalf("adding a layer should mark the level dirty")
	}

	if _, err := ed.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); err != nil {
		t.Fatalf("tab: %v", err)
	}
	if _, idx := ed.Document().Active(); idx != 0 {
		t.Fatalf("tab should wrap to layer 0, got %d", idx)
	}
	if _, err := ed.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)); err != nil {
		t.Fatalf("backtab: %v", err)
	}
	if _, idx := ed.Document().Active(); idx != 1 {
		t.Fatalf("backtab should wrap to layer 1, got %d", idx)
	}
}

func TestQuitKeys(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	ctx := context.Background()
	for _, ev := range []*tcell.EventKey{key('q'), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)} {
		quit, err := ed.HandleEvent(ctx, ev)
		if err != nil || !quit {
			t.Fatalf("%v: quit=%v err=%v", ev.Name(), quit, err)
		}
	}
}

func TestPaletteClickSetsColor(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	ctx := context.Background()
	active := func() string {
		l, _ := ed.Document().Active()
		return l.(*level.ColorPickerLayer).Color().Hex()
	}

	// Cell (6, 0) centres on (65, 12.5), inside the second swatch.
	if _, err := ed.HandleEvent(ctx, tcell.NewEventMouse(6, 0, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatalf("press: %v", err)
	}
	if got := active(); got != "00FF00" {
		t.Fatalf("expected green after palette click, got %s", got)
	}
	if !ed.Dirty() {
		t.Fatalf("color change should mark the level dirty")
	}

	// Sliders were not moved, so the next event recomputes black.
	if _, err := ed.HandleEvent(ctx, tcell.NewEventMouse(6, 0, tcell.ButtonNone, tcell.ModNone)); err != nil {
		t.Fatalf("release: %v", err)
	}
	if got := active(); got != "000000" {
		t.Fatalf("expected slider color after release, got %s", got)
	}
}

func TestMotionWithoutChangeStaysClean(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	if _, err := ed.HandleEvent(context.Background(), tcell.NewEventMouse(40, 8, tcell.ButtonNone, tcell.ModNone)); err != nil {
		t.Fatalf("motion: %v", err)
	}
	if ed.Dirty() {
		t.Fatalf("idle motion should not mark the level dirty")
	}
}

func TestDrawShowsStatusLine(t *testing.T) {
	ed, screen := newSimEditor(t, Options{})
	ed.Draw()
	_, rows := screen.Size()
	line := rowText(screen, rows-1)
	if !strings.Contains(line, "layer 1/1") || !strings.Contains(line, "#000000") {
		t.Fatalf("unexpected status line %q", line)
	}
}

func TestDrawReportsRenderFailure(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	ed.vp.Origin = core.Vec{X: 10000, Y: 10000}
	ed.Draw()
	if !strings.HasPrefix(ed.Status(), "render:") {
		t.Fatalf("expected render failure in status, got %q", ed.Status())
	}

	ed.vp.Origin = core.Vec{}
	ed.Draw()
	if got := ed.Status(); got != "" {
		t.Fatalf("render failure not cleared after a good draw, status %q", got)
	}
}

func TestSaveWritesLevelAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.Open(filepath.Join(dir, "snapshots.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	path := filepath.Join(dir, "level1.txt")
	ed, _ := newSimEditor(t, Options{Path: path, Snapshots: store})
	ctx := context.Background()

	if _, err := ed.HandleEvent(ctx, tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatalf("press: %v", err)
	}
	if _, err := ed.HandleEvent(ctx, key('s')); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if ed.Dirty() {
		t.Fatalf("save should clear the dirty flag")
	}
	if ed.Status() != "saved level1.txt" {
		t.Fatalf("unexpected status %q", ed.Status())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read level: %v", err)
	}
	if string(data) != "FF0000\n" {
		t.Fatalf("unexpected level content %q", data)
	}

	abs, _ := filepath.Abs(path)
	snap, err := store.Latest(ctx, abs)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap.Content != "FF0000\n" {
		t.Fatalf("unexpected snapshot content %q", snap.Content)
	}
}

func TestSaveCompressedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level2.txt.xz")
	ed, _ := newSimEditor(t, Options{Path: path})
	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err := level.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.String() != "000000\n" {
		t.Fatalf("unexpected round trip %q", doc.String())
	}
}

func TestSaveWithoutPath(t *testing.T) {
	ed, _ := newSimEditor(t, Options{})
	if err := ed.Save(context.Background()); err == nil {
		t.Fatalf("expected error without a level path")
	}
	if _, err := ed.HandleEvent(context.Background(), key('s')); err != nil {
		t.Fatalf("save failure must not end the session: %v", err)
	}
	if !strings.HasPrefix(ed.Status(), "save failed") {
		t.Fatalf("unexpected status %q", ed.Status())
	}
}

func TestLoadedDocumentIsEdited(t *testing.T) {
	doc, err := level.ReadDocument(linestream.FromString("00FF00\n0000FF\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ed, _ := newSimEditor(t, Options{Document: doc})
	if ed.Document().Len() != 2 {
		t.Fatalf("expected loaded layers to be kept, got %d", ed.Document().Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	SetScreenFactory(func() (tcell.Screen, error) {
		s := tcell.NewSimulationScreen("")
		return s, nil
	})
	defer SetScreenFactory(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunScreenFailure(t *testing.T) {
	boom := errors.New("no tty")
	SetScreenFactory(func() (tcell.Screen, error) { return nil, boom })
	defer SetScreenFactory(nil)

	if err := Run(context.Background(), Options{}); !errors.Is(err, boom) {
		t.Fatalf("expected screen error, got %v", err)
	}
}
