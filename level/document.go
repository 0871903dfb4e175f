// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: level/document.go
// Summary: Ordered layer list loaded from and saved to level files.

package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/framegrace/texeledit/internal/linestream"
	"github.com/framegrace/texeledit/texelui/core"
	"github.com/framegrace/texeledit/texelui/widgets"
)

// Extensions recognised by ListLevels.
const (
	Ext           = ".txt"
	CompressedExt = Ext + linestream.CompressedExt
)

// Document is the ordered set of layers making up a level. Input goes to
// the active layer, which is also the one drawn.
type Document struct {
	layers []Layer
	active int
}

// NewDocument returns a document holding layers.
func NewDocument(layers ...Layer) *Document {
	return &Document{layers: layers}
}

// ReadDocument reads color picker layers, one per line, until src is
// exhausted.
func ReadDocument(src linestream.Source) (*Document, error) {
	doc := &Document{}
	for {
		cp, err := widgets.Deserialize(src)
		if errors.Is(err, linestream.ErrEndOfInput) {
			return doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", len(doc.layers), err)
		}
		doc.layers = append(doc.layers, AsLayer(cp))
	}
}

// Load reads the level at path.
func Load(path string) (*Document, error) {
	f, err := linestream.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("read %s line %d: %w", path, f.Line(), err)
	}
	return doc, nil
}

// Save writes the level to path, compressing when path ends in .xz. The
// previous file is only replaced once every layer has been written.
func (d *Document) Save(path string) error {
	w, err := linestream.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(w); err != nil {
		w.Abort()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return w.Close()
}

// Write serializes every layer in order.
func (d *Document) Write(w io.Writer) error {
	for i, l := range d.layers {
		if err := l.Serialize(w); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// String returns the serialized level.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Write(&sb)
	return sb.String()
}

// Layers returns the layers in order.
func (d *Document) Layers() []Layer { return d.layers }

// Len returns the number of layers.
func (d *Document) Len() int { return len(d.layers) }

// Add appends l and makes it active.
func (d *Document) Add(l Layer) {
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
}

// Active returns the active layer and its index, or nil and -1 when empty.
func (d *Document) Active() (Layer, int) {
	if len(d.layers) == 0 {
		return nil, -1
	}
	return d.layers[d.active], d.active
}

// Cycle moves the active layer by delta, wrapping around.
func (d *Document) Cycle(delta int) {
	n := len(d.layers)
	if n == 0 {
		return
	}
	d.active = ((d.active+delta)%n + n) % n
}

// Render draws the active layer.
func (d *Document) Render(surface core.Surface) error {
	l, _ := d.Active()
	if l == nil {
		return nil
	}
	return l.Render(surface)
}

// HandleEvent routes ev to the active layer.
func (d *Document) HandleEvent(ev core.Event) error {
	l, _ := d.Active()
	if l == nil {
		return nil
	}
	return l.HandleEvent(ev)
}

// ListLevels returns the level files in dir, sorted by name.
func ListLevels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, Ext) || strings.HasSuffix(name, CompressedExt) {
			out = append(out, filepath.Join(dir, name))
		}
	}
	sort.Strings(out)
	return out, nil
}
