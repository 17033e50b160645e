package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestFileLoader_TOML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[log]
level = "debug"

[editor]
quit_confirmations = 2
watch = false
`)

	cfg, err := NewFileLoader(memfs, "/config.toml", TOML).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	log, _ := cfg["log"].(map[string]any)
	if log["level"] != "debug" {
		t.Errorf("log.level = %v, want debug", log["level"])
	}
	editor, _ := cfg["editor"].(map[string]any)
	if editor["quit_confirmations"] != int64(2) {
		t.Errorf("editor.quit_confirmations = %#v, want int64(2)", editor["quit_confirmations"])
	}
	if editor["watch"] != false {
		t.Errorf("editor.watch = %v, want false", editor["watch"])
	}
}

func TestFileLoader_Missing(t *testing.T) {
	cfg, err := NewFileLoader(NewMemFS(), "/nope.toml", TOML).Load()
	if cfg != nil || err != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", cfg, err)
	}
}

func TestFileLoader_TOMLParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log]\nlevel = \n")

	_, err := NewFileLoader(memfs, "/bad.toml", TOML).Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if pe.Path != "/bad.toml" || pe.Line == 0 {
		t.Errorf("ParseError = %+v, want path /bad.toml and a line", pe)
	}
}

func TestFileLoader_YAML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
log:
  level: warn
keys:
  quit: "Ctrl+X"
`)

	cfg, err := NewFileLoader(memfs, "/config.yaml", YAML).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	keys, _ := cfg["keys"].(map[string]any)
	if keys["quit"] != "Ctrl+X" {
		t.Errorf("keys.quit = %v, want Ctrl+X", keys["quit"])
	}
}

func TestFileLoader_YAMLParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yml", "log:\n  level: [unclosed\n")

	_, err := NewFileLoader(memfs, "/bad.yml", YAML).Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if !strings.Contains(pe.Error(), "/bad.yml") {
		t.Errorf("Error() = %q, want path in message", pe.Error())
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "toml", false},
		{"a.YAML", "yaml", false},
		{"a.yml", "yaml", false},
		{"a.json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(NewMemFS(), tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if got := l.Format().Name; got != tt.want {
					t.Errorf("ForPath() format = %s, want %s", got, tt.want)
				}
			}
		})
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("CELLPAD_")
	l.environ = func() []string {
		return []string{
			"CELLPAD_LOG_LEVEL=debug",
			"CELLPAD_EDITOR_WATCH=off",
			"CELLPAD_EDITOR_QUIT_CONFIRMATIONS=3",
			"CELLPAD_UI_EMPTY_ROW=",
			"CELLPAD_BOGUS=1",
			"HOME=/root",
		}
	}

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[string]any{
		"log":    map[string]any{"level": "debug"},
		"editor": map[string]any{"watch": false, "quit_confirmations": int64(3)},
		"ui":     map[string]any{"empty_row": ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %#v, want %#v", got, want)
	}
}

func TestEnvLoaderSetenv(t *testing.T) {
	t.Setenv("CELLPADTEST_KEYS_FIND", "Ctrl+G")
	got, _ := NewEnvLoader("CELLPADTEST_").Load()
	keys, _ := got["keys"].(map[string]any)
	if keys["find"] != "Ctrl+G" {
		t.Errorf("keys.find = %v, want Ctrl+G", keys["find"])
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{"log": map[string]any{"level": "info", "file": ""}, "x": 1}
	src := map[string]any{"log": map[string]any{"level": "debug"}, "y": 2}

	got := DeepMerge(dst, src)
	want := map[string]any{"log": map[string]any{"level": "debug", "file": ""}, "x": 1, "y": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeepMerge() = %v, want %v", got, want)
	}
}
