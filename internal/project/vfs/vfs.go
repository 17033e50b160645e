// Package vfs is the file system seam of the file store. Documents are
// loaded and saved against the OS in the editor and against an in-memory
// tree in tests.
package vfs

import (
	"io/fs"
	"time"
)

// FS is what loading and saving a document needs from a file system.
// Names are file paths; relative names are resolved by Abs.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Stat(name string) (Stamp, error)
	// Rename moves from over to, replacing it.
	Rename(from, to string) error
	Remove(name string) error
	Mkdir(dir string) error
	Abs(name string) (string, error)
}

// Stamp identifies one version of a file on disk.
type Stamp struct {
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// IsDir reports whether the stamp is of a directory.
func (s Stamp) IsDir() bool { return s.Mode.IsDir() }

// Same reports whether s and o have the same size and modification time.
// The store treats such a file as untouched since it last saw it.
func (s Stamp) Same(o Stamp) bool {
	return s.Size == o.Size && s.ModTime.Equal(o.ModTime)
}

func stampOf(fi fs.FileInfo) Stamp {
	return Stamp{Size: fi.Size(), Mode: fi.Mode(), ModTime: fi.ModTime()}
}
