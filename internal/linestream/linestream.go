// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/linestream/linestream.go
// Summary: Line-at-a-time reading of level files, with optional xz framing.

package linestream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// CompressedExt marks level files stored xz-compressed.
const CompressedExt = ".xz"

// ErrEndOfInput is returned when a line is required but the source is exhausted.
var ErrEndOfInput = errors.New("end of input")

// MaxLineBytes bounds a single line. Text after a color is ignored but still
// has to fit.
const MaxLineBytes = 1 << 20

// Source yields lines one at a time. ok is false once the input is exhausted
// or unreadable.
type Source interface {
	Next() (line string, ok bool)
}

// Err returns the read error that stopped src, or nil when src simply ran
// out of lines or cannot report errors.
func Err(src Source) error {
	if es, ok := src.(interface{ Err() error }); ok {
		return es.Err()
	}
	return nil
}

// Stream is a Source over an io.Reader.
type Stream struct {
	scanner *bufio.Scanner
	lineNo  int
}

// New returns a Stream reading from r.
func New(r io.Reader) *Stream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	return &Stream{scanner: sc}
}

// FromString returns a Stream over text; handy for tests and pasted levels.
func FromString(text string) *Stream {
	return New(strings.NewReader(text))
}

// Next returns the next line without its terminator.
func (s *Stream) Next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	s.lineNo++
	return strings.TrimSuffix(s.scanner.Text(), "\r"), true
}

// Line is the 1-based number of the last line returned.
func (s *Stream) Line() int { return s.lineNo }

// Err reports the first read error, if any. Plain end of input is not an error.
func (s *Stream) Err() error { return s.scanner.Err() }

// File is a Stream backed by an open level file.
type File struct {
	*Stream
	f *os.File
}

// Close releases the underlying file.
func (f *File) Close() error { return f.f.Close() }

// Open opens a level file for reading. Files ending in .xz are decompressed
// transparently.
func Open(path string) (*File, error) {
	f, err := os.Open(path) // #nosec G304 - path chosen by the user
	if err != nil {
		return nil, err
	}

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedExt) {
		xzr, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create xz reader for %s: %w", path, err)
		}
		r = xzr
	}
	return &File{Stream: New(r), f: f}, nil
}

// Writer stages a level in a temp file next to its destination. Close moves
// it into place; until then the previous file is untouched.
type Writer struct {
	io.Writer
	xz   *xz.Writer
	f    *os.File
	path string
	done bool
}

// Create starts writing path. Paths ending in .xz are compressed.
func Create(path string) (*Writer, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, err
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, err
	}

	w := &Writer{Writer: f, f: f, path: path}
	if strings.HasSuffix(path, CompressedExt) {
		xzw, err := xz.NewWriter(f)
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return nil, fmt.Errorf("failed to create xz writer for %s: %w", path, err)
		}
		w.Writer, w.xz = xzw, xzw
	}
	return w, nil
}

// Close finishes the write and renames the temp file over path. On error the
// temp file is removed and path keeps its previous content.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	tmp := w.f.Name()
	if w.xz != nil {
		if err := w.xz.Close(); err != nil {
			_ = w.f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("failed to finish xz stream for %s: %w", w.path, err)
		}
	}
	if err := w.f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}

// Abort discards everything written so far.
func (w *Writer) Abort() {
	if w.done {
		return
	}
	w.done = true
	_ = w.f.Close()
	_ = os.Remove(w.f.Name())
}
