// Package filestore loads and saves documents as lines of text.
package filestore

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/cellpad/internal/project"
	"github.com/dshills/cellpad/internal/project/vfs"
)

// DefaultMaxFileSize is the default largest file Load accepts (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

const defaultPerm fs.FileMode = 0o644

// Store reads and writes documents through a vfs.FS. It remembers the size and
// modification time of every file it loads or saves so callers can tell
// their own writes from external ones.
//
// Store is safe for concurrent use.
type Store struct {
	fs          vfs.FS
	maxFileSize int64

	mu      sync.Mutex
	written map[string]vfs.Stamp
}

// Option configures a Store.
type Option func(*Store)

// WithFS sets the file system. The default is the OS file system.
func WithFS(v vfs.FS) Option {
	return func(s *Store) {
		s.fs = v
	}
}

// WithMaxFileSize sets the maximum file size Load accepts. Zero or
// negative means no limit.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// New creates a store.
func New(opts ...Option) *Store {
	s := &Store{
		fs:          vfs.OS{},
		maxFileSize: DefaultMaxFileSize,
		written:     make(map[string]vfs.Stamp),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads path and returns its lines without their line terminators.
// A missing file is a new document with one empty line. A trailing newline
// does not produce an extra empty line.
func (s *Store) Load(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, project.NewFileError(project.OpLoad, path, project.ErrEmptyPath)
	}
	abs, err := s.fs.Abs(path)
	if err != nil {
		return nil, project.NewFileError(project.OpLoad, path, err)
	}

	info, err := s.fs.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		s.forget(abs)
		return []string{""}, nil
	}
	if err != nil {
		return nil, project.NewFileError(project.OpLoad, path, err)
	}
	if info.IsDir() {
		return nil, project.NewFileError(project.OpLoad, path, project.ErrIsDirectory)
	}
	if s.maxFileSize > 0 && info.Size > s.maxFileSize {
		return nil, project.NewFileError(project.OpLoad, path, project.ErrFileTooLarge)
	}

	content, err := s.fs.ReadFile(abs)
	if err != nil {
		return nil, project.NewFileError(project.OpLoad, path, err)
	}
	if vfs.IsBinary(content) {
		return nil, project.NewFileError(project.OpLoad, path, project.ErrBinaryFile)
	}
	text, err := vfs.Decode(content)
	if err != nil {
		return nil, project.NewFileError(project.OpLoad, path, err)
	}

	s.remember(abs, info)
	return SplitLines(string(text)), nil
}

// Save writes lines to path, each followed by a newline. The content goes
// to a temporary file in the same directory which is then renamed over
// path, so a failed save leaves the previous file intact.
func (s *Store) Save(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return project.NewFileError(project.OpSave, path, project.ErrEmptyPath)
	}
	abs, err := s.fs.Abs(path)
	if err != nil {
		return project.NewFileError(project.OpSave, path, err)
	}

	perm := defaultPerm
	if info, err := s.fs.Stat(abs); err == nil {
		if info.IsDir() {
			return project.NewFileError(project.OpSave, path, project.ErrIsDirectory)
		}
		perm = info.Mode.Perm()
	}

	tmp := filepath.Join(filepath.Dir(abs), "."+filepath.Base(abs)+"."+uuid.NewString()+".tmp")
	if err := s.fs.WriteFile(tmp, []byte(JoinLines(lines)), perm); err != nil {
		return project.NewFileError(project.OpSave, path, err)
	}
	if err := s.fs.Rename(tmp, abs); err != nil {
		_ = s.fs.Remove(tmp)
		return project.NewFileError(project.OpSave, path, err)
	}

	if info, err := s.fs.Stat(abs); err == nil {
		s.remember(abs, info)
	}
	return nil
}

// ChangedOnDisk reports whether path differs from what the store last
// loaded or saved: it was modified, created or removed by someone else.
func (s *Store) ChangedOnDisk(path string) bool {
	abs, err := s.fs.Abs(path)
	if err != nil {
		return false
	}

	s.mu.Lock()
	known, ok := s.written[abs]
	s.mu.Unlock()

	info, err := s.fs.Stat(abs)
	switch {
	case err != nil:
		return ok
	case !ok:
		return true
	default:
		return !known.Same(info)
	}
}

func (s *Store) remember(abs string, info vfs.Stamp) {
	s.mu.Lock()
	s.written[abs] = info
	s.mu.Unlock()
}

func (s *Store) forget(abs string) {
	s.mu.Lock()
	delete(s.written, abs)
	s.mu.Unlock()
}

// SplitLines splits text into lines. "\r\n" endings are accepted and a
// final newline ends the last line rather than starting a new one.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
