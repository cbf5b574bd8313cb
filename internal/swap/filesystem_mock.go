package swap

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem implements FileSystem on an in-memory table of entries.
// Tests pre-load it with AddFile and AddDir, arrange failures for
// individual rename calls, and afterwards inspect both the surviving
// entries and the exact order of operations.
type MockFileSystem struct {
	entries map[string]*MockFileInfo

	// Ops records every call in order, e.g. "rename /a -> /b" or
	// "lstat /a".
	Ops []string

	renameCalls int
	renameErrs  map[int]error
}

// MockFileInfo implements fs.FileInfo for entries in a MockFileSystem.
type MockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	content string
}

// Name returns the base name of the entry
func (m *MockFileInfo) Name() string { return m.name }

// Size returns the length in bytes
func (m *MockFileInfo) Size() int64 { return m.size }

// Mode returns the file mode bits
func (m *MockFileInfo) Mode() os.FileMode { return m.mode }

// ModTime returns the modification time
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }

// IsDir reports whether m describes a directory
func (m *MockFileInfo) IsDir() bool { return m.mode.IsDir() }

// Sys returns nil; the mock has no underlying data source
func (m *MockFileInfo) Sys() any { return nil }

// NewMockFileSystem creates an empty MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		entries:    make(map[string]*MockFileInfo),
		renameErrs: make(map[int]error),
	}
}

// AddFile registers a regular file with the given content
func (m *MockFileSystem) AddFile(path, content string) {
	path = filepath.Clean(path)
	m.entries[path] = &MockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(content)),
		mode:    0o644,
		modTime: time.Now(),
		content: content,
	}
}

// AddDir registers a directory
func (m *MockFileSystem) AddDir(path string) {
	path = filepath.Clean(path)
	m.entries[path] = &MockFileInfo{
		name:    filepath.Base(path),
		mode:    os.ModeDir | 0o755,
		modTime: time.Now(),
	}
}

// FailRename arranges for the n-th Rename call (1-based) to fail with err
// while leaving the entry table untouched.
func (m *MockFileSystem) FailRename(n int, err error) {
	m.renameErrs[n] = err
}

// Rename moves the entry at oldpath, and any entries below it, to newpath.
// A missing source reports fs.ErrNotExist wrapped in *os.LinkError, which
// is what os.Rename produces.
func (m *MockFileSystem) Rename(oldpath, newpath string) error {
	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)
	m.renameCalls++
	m.Ops = append(m.Ops, "rename "+oldpath+" -> "+newpath)

	if err := m.renameErrs[m.renameCalls]; err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	entry, ok := m.entries[oldpath]
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}

	delete(m.entries, oldpath)
	entry.name = filepath.Base(newpath)
	m.entries[newpath] = entry

	// Carry children along when a directory moves.
	prefix := oldpath + string(filepath.Separator)
	var children []string
	for path := range m.entries {
		if strings.HasPrefix(path, prefix) {
			children = append(children, path)
		}
	}
	for _, path := range children {
		child := m.entries[path]
		delete(m.entries, path)
		m.entries[filepath.Join(newpath, strings.TrimPrefix(path, prefix))] = child
	}

	return nil
}

// Lstat returns information for the entry at path
func (m *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	path = filepath.Clean(path)
	m.Ops = append(m.Ops, "lstat "+path)

	entry, ok := m.entries[path]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return entry, nil
}

// Exists reports whether an entry is present (for test assertions)
func (m *MockFileSystem) Exists(path string) bool {
	_, ok := m.entries[filepath.Clean(path)]
	return ok
}

// Content returns the content of the file at path, or "" when absent (for
// test assertions)
func (m *MockFileSystem) Content(path string) string {
	if entry, ok := m.entries[filepath.Clean(path)]; ok {
		return entry.content
	}
	return ""
}

// Paths returns all entry paths in sorted order (for test assertions)
func (m *MockFileSystem) Paths() []string {
	var paths []string
	for path := range m.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
