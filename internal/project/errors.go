package project

import (
	"errors"
	"fmt"
)

var (
	ErrIsDirectory   = errors.New("is a directory")
	ErrFileTooLarge  = errors.New("file too large")
	ErrBinaryFile    = errors.New("binary file")
	ErrEmptyPath     = errors.New("no file name")
	ErrWatcherFailed = errors.New("file watcher failed")
	ErrWatcherClosed = errors.New("watcher closed")
)

// Op names what was being done to a document's file.
type Op string

const (
	OpLoad  Op = "load"
	OpSave  Op = "save"
	OpWatch Op = "watch"
)

// FileError is a failed operation on a document's file.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// NewFileError returns a FileError for op on path.
func NewFileError(op Op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}
