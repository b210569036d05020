// Package workspace manages the scratch directory a check run converts into.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Workspace is a uniquely named directory under the OS temp dir that lives
// for one run. Callers defer Close right after New.
type Workspace struct {
	path   string
	once   sync.Once
	err    error
	remove func(string) error
}

// New creates <tmp>/<prefix>-<uuid>.
func New(prefix string) (*Workspace, error) {
	return NewIn(os.TempDir(), prefix)
}

// NewIn creates <parent>/<prefix>-<uuid>.
func NewIn(parent, prefix string) (*Workspace, error) {
	path := filepath.Join(parent, fmt.Sprintf("%s-%s", prefix, uuid.NewString()))
	if err := os.Mkdir(path, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{path: path, remove: os.RemoveAll}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Join returns a path inside the workspace.
func (w *Workspace) Join(elem ...string) string {
	return filepath.Join(append([]string{w.path}, elem...)...)
}

// Close removes the workspace and everything in it. Only the first call does
// any work; later calls return the first result.
func (w *Workspace) Close() error {
	w.once.Do(func() {
		if err := w.remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			w.err = fmt.Errorf("failed to remove workspace %s: %w", w.path, err)
		}
	})
	return w.err
}
