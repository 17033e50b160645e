package filestore

import (
	"path/filepath"
	"strings"
)

// NoName is the display name of a document without a file.
const NoName = "[No Name]"

// FileInfo describes the file behind a document.
type FileInfo struct {
	Name string
	Path string
	Type string
}

// NewFileInfo returns the info for path. An empty path yields the info of
// an unnamed document.
func NewFileInfo(path string) FileInfo {
	if path == "" {
		return FileInfo{Name: NoName, Type: DetectFileType("")}
	}
	return FileInfo{
		Name: filepath.Base(path),
		Path: path,
		Type: DetectFileType(path),
	}
}

// HasPath reports whether the document has a file.
func (fi FileInfo) HasPath() bool {
	return fi.Path != ""
}

// DetectFileType returns a display name for the file's type, derived from
// its extension.
func DetectFileType(path string) string {
	base := filepath.Base(path)
	switch strings.ToLower(base) {
	case "makefile", "gnumakefile":
		return "Makefile"
	case "dockerfile":
		return "Dockerfile"
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".go":
		return "Go"
	case ".rs":
		return "Rust"
	case ".txt", ".text":
		return "Text"
	case ".md", ".markdown":
		return "Markdown"
	case ".py":
		return "Python"
	case ".js", ".mjs":
		return "JavaScript"
	case ".ts":
		return "TypeScript"
	case ".c", ".h":
		return "C"
	case ".cpp", ".cc", ".cxx", ".hpp":
		return "C++"
	case ".java":
		return "Java"
	case ".rb":
		return "Ruby"
	case ".sh", ".bash":
		return "Shell"
	case ".json":
		return "JSON"
	case ".yaml", ".yml":
		return "YAML"
	case ".toml":
		return "TOML"
	case ".html", ".htm":
		return "HTML"
	case ".css":
		return "CSS"
	default:
		return "Unknown"
	}
}
