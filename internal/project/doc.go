// Package project provides the file side of the editor: loading and saving
// documents, watching the edited file for external changes, and the errors
// those operations return.
//
// The subpackages are:
//
//   - vfs: file system abstraction with OS and in-memory implementations
//   - filestore: document load/save, atomic writes, file type detection
//   - watcher: fsnotify-based change notification for a single file
package project
