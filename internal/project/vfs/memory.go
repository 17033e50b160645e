package vfs

import (
	"io/fs"
	"path"
	"sync"
	"syscall"
	"time"
)

// memEpoch is the modification time of the first write to a MemFS.
var memEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// MemFS is an in-memory FS for tests. Paths are slash separated and
// resolved against "/". Every write advances the clock by one second, so
// two writes never share a modification time.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.Mutex
	files map[string]memFile
	dirs  map[string]struct{}
	clock time.Time
}

type memFile struct {
	data  []byte
	stamp Stamp
}

// NewMemFS returns a MemFS holding only the root directory.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]memFile),
		dirs:  map[string]struct{}{"/": {}},
		clock: memEpoch,
	}
}

var _ FS = (*MemFS)(nil)

func (m *MemFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, m.missing("read", name)
	}
	return append([]byte(nil), f.data...), nil
}

// WriteFile stores a copy of data. The parent directory must exist.
func (m *MemFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if err := m.checkTarget("write", name); err != nil {
		return err
	}
	m.clock = m.clock.Add(time.Second)
	m.files[name] = memFile{
		data:  append([]byte(nil), data...),
		stamp: Stamp{Size: int64(len(data)), Mode: perm.Perm(), ModTime: m.clock},
	}
	return nil
}

func (m *MemFS) Stat(name string) (Stamp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if f, ok := m.files[name]; ok {
		return f.stamp, nil
	}
	if _, ok := m.dirs[name]; ok {
		return Stamp{Mode: fs.ModeDir | 0o755}, nil
	}
	return Stamp{}, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// Rename moves a file and keeps its stamp, like rename(2).
func (m *MemFS) Rename(from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, to = clean(from), clean(to)
	f, ok := m.files[from]
	if !ok {
		return m.missing("rename", from)
	}
	if err := m.checkTarget("rename", to); err != nil {
		return err
	}
	m.files[to] = f
	delete(m.files, from)
	return nil
}

func (m *MemFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if _, ok := m.files[name]; !ok {
		return m.missing("remove", name)
	}
	delete(m.files, name)
	return nil
}

// Mkdir creates dir and any missing parents.
func (m *MemFS) Mkdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for p := clean(dir); ; p = path.Dir(p) {
		if _, ok := m.files[p]; ok {
			return &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
		}
		m.dirs[p] = struct{}{}
		if p == "/" {
			return nil
		}
	}
}

func (m *MemFS) Abs(name string) (string, error) { return clean(name), nil }

// missing reports name as a directory or as absent. m.mu must be held.
func (m *MemFS) missing(op, name string) error {
	if _, ok := m.dirs[name]; ok {
		return &fs.PathError{Op: op, Path: name, Err: syscall.EISDIR}
	}
	return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
}

// checkTarget reports whether a file may be created at name. m.mu must be
// held.
func (m *MemFS) checkTarget(op, name string) error {
	if _, ok := m.dirs[name]; ok {
		return &fs.PathError{Op: op, Path: name, Err: syscall.EISDIR}
	}
	if _, ok := m.dirs[path.Dir(name)]; !ok {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return nil
}

func clean(p string) string {
	if !path.IsAbs(p) {
		p = "/" + p
	}
	return path.Clean(p)
}
