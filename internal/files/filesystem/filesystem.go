package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents a file or directory discovered during a walk
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked root
	RelativePath() string

	// Info returns entry metadata. May be nil when the walk reported an error for this entry.
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree depth-first, calling fn for each file and directory.
	// When an entry cannot be read, fn receives that entry (if known) and the error;
	// returning nil continues the walk. Returning filepath.SkipDir from a directory
	// entry skips its contents. Any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenFile opens a file for streaming reads. The caller must close it.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the direct entries of the directory at path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	// The error satisfies errors.Is(err, fs.ErrNotExist) when nothing exists there.
	Stat(path string) (FileInfo, error)
}
