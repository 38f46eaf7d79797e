// Package tempfile converts raw image payloads to temp-file-backed ones
// and cleans up after itself. Every file it creates carries the Prefix,
// and Clear removes all and only files carrying that prefix — the same
// contract the pipeline's past conversions rely on, so cleanup never
// touches unrelated files in a shared temp directory.
package tempfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"go.gausoft.dev/pastein/internal/transport"
)

// Prefix marks every file created by a Writer.
const Prefix = "paste_"

// Writer writes image payload bytes into a temp directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer targeting dir, or the OS temp directory
// when dir is empty.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Writer{dir: dir}
}

// Dir returns the directory the writer targets.
func (w *Writer) Dir() string { return w.dir }

// WriteImages writes each item's bytes to a fresh paste_<uuid>.<ext>
// file and returns parallel path and MIME slices. Any write failure
// aborts the whole conversion: already-written files are removed and an
// error is returned, so a paste is either fully file-backed or not at
// all.
func (w *Writer) WriteImages(items []transport.Item) (uris []string, mimes []string, err error) {
	for _, it := range items {
		name := Prefix + uuid.NewString() + extFor(it.MIME)
		path := filepath.Join(w.dir, name)
		if err := os.WriteFile(path, it.Data, 0o600); err != nil {
			for _, u := range uris {
				_ = os.Remove(u)
			}
			return nil, nil, fmt.Errorf("write %s: %w", path, err)
		}
		uris = append(uris, path)
		mimes = append(mimes, it.MIME)
	}
	return uris, mimes, nil
}

// Clear removes every Prefix-named file in the writer's directory.
// Individual removal failures are logged and skipped; Clear never fails
// the caller.
func (w *Writer) Clear() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		slog.Warn("temp dir unreadable", "dir", w.dir, "err", err)
		return
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || len(e.Name()) < len(Prefix) || e.Name()[:len(Prefix)] != Prefix {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		if err := os.Remove(path); err != nil {
			slog.Warn("temp file removal failed", "path", path, "err", err)
			continue
		}
		removed++
	}
	slog.Debug("temp files cleared", "dir", w.dir, "removed", removed)
}

// extFor maps a MIME type to a filename extension, defaulting to .bin
// for types we don't recognise (the path still carries the Prefix, so
// Clear finds it).
func extFor(mime string) string {
	switch mime {
	case transport.MIMEPNG:
		return ".png"
	case transport.MIMEJPEG:
		return ".jpg"
	case transport.MIMEGIF:
		return ".gif"
	case transport.MIMEWebP:
		return ".webp"
	default:
		return ".bin"
	}
}
