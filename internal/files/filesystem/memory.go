package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry implements File for in-memory files and directories
type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
	relPath string
}

func (e *memoryEntry) Path() string         { return e.absPath }
func (e *memoryEntry) RelativePath() string { return e.relPath }
func (e *memoryEntry) Info() FileInfo       { return e.info }

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in lexical path order so tests are deterministic.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	var skipped []string
	for _, entry := range entries {
		if hasAnyPrefix(entry.absPath, skipped) {
			continue
		}

		rel, err := filepath.Rel(d.absPath, entry.absPath)
		if err != nil {
			rel = entry.absPath
		}
		visit := &memoryEntry{
			absPath: entry.absPath,
			content: entry.content,
			info:    entry.info,
			relPath: filepath.ToSlash(rel),
		}

		var walkErr error
		if entry.info.IsDir() {
			walkErr = d.fs.failures[entry.absPath]
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(visit, walkErr)
		}()

		if callbackErr != nil && !errors.Is(callbackErr, filepath.SkipDir) {
			return callbackErr
		}
		// unreadable directories are not descended, as with filepath.Walk
		if entry.info.IsDir() && (callbackErr != nil || walkErr != nil) {
			skipped = append(skipped, entry.absPath+"/")
		}
	}

	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes regardless of platform.
type MemoryFileSystem struct {
	entries  map[string]*memoryEntry // absolute path -> entry
	failures map[string]error        // absolute path -> error reported while walking or reading
	root     string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries:  make(map[string]*memoryEntry),
		failures: make(map[string]error),
		root:     root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	data := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureParents(absPath)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.addDir(absPath)
	mfs.ensureParents(absPath)
}

// FailOn makes reads of filePath report err. A failing directory is also
// reported to the walk callback and not descended.
func (mfs *MemoryFileSystem) FailOn(filePath string, err error) {
	mfs.failures[mfs.resolve(filePath)] = err
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if _, exists := mfs.entries[absPath]; exists {
		return
	}
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) ensureParents(absPath string) {
	dir := path.Dir(absPath)
	for dir != absPath && strings.HasPrefix(dir, mfs.root) {
		mfs.addDir(dir)
		if dir == mfs.root {
			return
		}
		absPath, dir = dir, path.Dir(dir)
	}
}

// resolve turns a relative or absolute path into a clean absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// entriesUnder returns basePath and everything below it, sorted by path.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryEntry {
	var entries []*memoryEntry
	for p, e := range mfs.entries {
		if p == basePath || strings.HasPrefix(p, strings.TrimSuffix(basePath, "/")+"/") {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})
	return entries
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", notExist("open", openPath))
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	content, err := mfs.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	if err := mfs.failures[absPath]; err != nil {
		return nil, err
	}
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, notExist("read", filePath)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", filePath)
	}
	return entry.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)
	if err := mfs.failures[absPath]; err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", notExist("readdir", dirPath))
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, e.info)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, notExist("stat", statPath)
	}
	return entry.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
