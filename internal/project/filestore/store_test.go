package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/cellpad/internal/project"
	"github.com/dshills/cellpad/internal/project/vfs"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank last line", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"spaces kept", "  x \t\n", []string{"  x \t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinLines(t *testing.T) {
	if got, want := JoinLines([]string{"a", "", "b"}), "a\n\nb\n"; got != want {
		t.Errorf("JoinLines() = %q, want %q", got, want)
	}
	if got := JoinLines(nil); got != "" {
		t.Errorf("JoinLines(nil) = %q, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(WithFS(vfs.NewMemFS()))
	lines, err := s.Load(context.Background(), "/nope.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("Load() = %q, want one empty line", lines)
	}
}

func TestLoadErrors(t *testing.T) {
	m := vfs.NewMemFS()
	_ = m.Mkdir("/dir")
	_ = m.WriteFile("/bin", []byte{0x7f, 'E', 'L', 'F', 0, 0}, 0o644)
	_ = m.WriteFile("/big", []byte(strings.Repeat("x", 32)), 0o644)

	s := New(WithFS(m), WithMaxFileSize(16))
	tests := []struct {
		path string
		want error
	}{
		{"/dir", project.ErrIsDirectory},
		{"/bin", project.ErrBinaryFile},
		{"/big", project.ErrFileTooLarge},
		{"", project.ErrEmptyPath},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := s.Load(context.Background(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.want)
			}
			var pe *project.FileError
			if !errors.As(err, &pe) || pe.Op != project.OpLoad {
				t.Errorf("Load(%q) error = %v, want FileError with Op load", tt.path, err)
			}
		})
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(WithFS(vfs.NewMemFS())).Load(ctx, "/a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	m := vfs.NewMemFS()
	_ = m.WriteFile("/bom.txt", []byte("\xEF\xBB\xBFfirst\nsecond\n"), 0o644)

	lines, err := New(WithFS(m)).Load(context.Background(), "/bom.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("Load() = %q, want %q", lines, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	s := New()
	ctx := context.Background()

	want := []string{"hello world", "", "\ttabbed", "日本語"}
	if err := s.Save(ctx, path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := string(raw); got != "hello world\n\n\ttabbed\n日本語\n" {
		t.Errorf("file content = %q", got)
	}

	got, err := s.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %q, want %q", got, want)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the saved file", len(entries))
	}
}

func TestSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := New().Save(context.Background(), path, []string{"new"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestSaveFailureLeavesFile(t *testing.T) {
	m := vfs.NewMemFS()
	s := New(WithFS(m))

	err := s.Save(context.Background(), "/missing/dir/a.txt", []string{"x"})
	var pe *project.FileError
	if !errors.As(err, &pe) || pe.Op != project.OpSave {
		t.Fatalf("Save() error = %v, want FileError with Op save", err)
	}

	_ = m.Mkdir("/d")
	if err := s.Save(context.Background(), "/d", []string{"x"}); !errors.Is(err, project.ErrIsDirectory) {
		t.Errorf("Save(dir) error = %v, want ErrIsDirectory", err)
	}
}

func TestChangedOnDisk(t *testing.T) {
	m := vfs.NewMemFS()
	s := New(WithFS(m))
	ctx := context.Background()

	if s.ChangedOnDisk("/a.txt") {
		t.Error("ChangedOnDisk() = true for unknown missing file")
	}

	if err := s.Save(ctx, "/a.txt", []string{"one"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if s.ChangedOnDisk("/a.txt") {
		t.Error("ChangedOnDisk() = true right after our own save")
	}

	_ = m.WriteFile("/a.txt", []byte("someone else wrote this\n"), 0o644)
	if !s.ChangedOnDisk("/a.txt") {
		t.Error("ChangedOnDisk() = false after external write")
	}

	if _, err := s.Load(ctx, "/a.txt"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ChangedOnDisk("/a.txt") {
		t.Error("ChangedOnDisk() = true after reload")
	}

	_ = m.Remove("/a.txt")
	if !s.ChangedOnDisk("/a.txt") {
		t.Error("ChangedOnDisk() = false after removal")
	}
}

func TestFileInfo(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantType string
	}{
		{"", NoName, "Unknown"},
		{"/src/main.rs", "main.rs", "Rust"},
		{"notes.TXT", "notes.TXT", "Text"},
		{"/x/Makefile", "Makefile", "Makefile"},
		{"/x/editor.go", "editor.go", "Go"},
		{"/x/archive.tar.gz", "archive.tar.gz", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			fi := NewFileInfo(tt.path)
			if fi.Name != tt.wantName || fi.Type != tt.wantType {
				t.Errorf("NewFileInfo(%q) = %+v, want name %q type %q", tt.path, fi, tt.wantName, tt.wantType)
			}
			if fi.HasPath() != (tt.path != "") {
				t.Errorf("HasPath() = %v", fi.HasPath())
			}
		})
	}
}
