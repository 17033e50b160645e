// Package loader reads configuration files and environment variables into
// nested maps keyed by setting name.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Format parses one configuration file syntax.
type Format struct {
	Name string
	// Parse decodes data; source names the data in errors.
	Parse func(source string, data []byte) (map[string]any, error)
}

var (
	TOML = Format{Name: "toml", Parse: ParseTOML}
	YAML = Format{Name: "yaml", Parse: ParseYAML}
)

// Extensions lists the configuration file extensions in search order.
var Extensions = []string{".toml", ".yaml", ".yml"}

var formatByExt = map[string]Format{".toml": TOML, ".yaml": YAML, ".yml": YAML}

// FileLoader loads one configuration file.
type FileLoader struct {
	fs     FileSystem
	path   string
	format Format
}

var (
	_ Loader = (*FileLoader)(nil)
	_ Loader = (*EnvLoader)(nil)
)

func NewFileLoader(fsys FileSystem, path string, format Format) *FileLoader {
	return &FileLoader{fs: fsys, path: path, format: format}
}

// ForPath returns the loader for path, chosen by its extension.
func ForPath(fsys FileSystem, path string) (*FileLoader, error) {
	ext := filepath.Ext(path)
	f, ok := formatByExt[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return NewFileLoader(fsys, path, f), nil
}

// Format returns the syntax the file is parsed as.
func (l *FileLoader) Format() Format { return l.format }

// Load parses the file. A missing file yields nil, nil.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if data == nil || err != nil {
		return nil, err
	}
	return l.format.Parse(l.path, data)
}

// readFile reads path, mapping a missing file to nil, nil.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = DeepMerge(nil, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}
