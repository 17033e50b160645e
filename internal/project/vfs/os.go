package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OS is the operating system's file system.
type OS struct{}

var _ FS = OS{}

func (OS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OS) Stat(name string) (Stamp, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return Stamp{}, err
	}
	return stampOf(fi), nil
}

func (OS) Rename(from, to string) error { return os.Rename(from, to) }

func (OS) Remove(name string) error { return os.Remove(name) }

// Mkdir creates dir and any missing parents.
func (OS) Mkdir(dir string) error { return os.MkdirAll(dir, 0o755) }

func (OS) Abs(name string) (string, error) { return filepath.Abs(name) }
