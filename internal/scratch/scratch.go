// Package scratch manages the transient on-disk copies of uploaded files.
// Names are sanitized and prefixed with a per-request id so concurrent
// uploads of the same filename never touch the same file.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Dir is a scratch directory for uploads.
type Dir struct {
	path string
}

// New ensures the directory exists and returns a store over it.
func New(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("scratch: create %s: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory backing the store.
func (d *Dir) Path() string {
	return d.path
}

// Save writes data under a collision-free name derived from filename.
// The returned cleanup removes the file; it is safe to call on every exit
// path, including after the file is already gone.
func (d *Dir) Save(filename string, data []byte) (string, func(), error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", nil, fmt.Errorf("scratch: unusable filename %q", filename)
	}
	path := filepath.Join(d.path, uuid.NewString()+"_"+name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", nil, fmt.Errorf("scratch: write %s: %w", path, err)
	}
	cleanup := func() {
		_ = os.Remove(path)
	}
	return path, cleanup, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe base name:
// path components are stripped and anything outside [A-Za-z0-9._-] becomes
// an underscore. Returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	// Clients may send either separator regardless of their OS.
	filename = strings.ReplaceAll(filename, "\\", "/")
	base := filepath.Base(filename)
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
