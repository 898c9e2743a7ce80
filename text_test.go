package stash

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/stash/stashtest"
)

func TestWriteFile_ReadFile(t *testing.T) {
	path := stashtest.Path(t, "t.txt")
	lines := []string{"Line 1", "Line 2"}

	if err := WriteFile(lines, path, Silent()); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("ReadLines() = %q, want %q", got, lines)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if content != "Line 1\nLine 2\n" {
		t.Errorf("ReadFile() = %q, want %q", content, "Line 1\nLine 2\n")
	}
}

func TestWriteFile_StringAndForce(t *testing.T) {
	path := stashtest.Path(t, "test.txt")
	var out bytes.Buffer

	if err := WriteFile("Initial Content", path, Silent(), WithOutput(&out)); err != nil {
		t.Fatal(err)
	}
	if got, _ := ReadFile(path); got != "Initial Content\n" {
		t.Errorf("ReadFile() = %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("first write printed %q", out.String())
	}

	// Without Force the file is kept.
	if err := WriteFile("New Content", path, Silent(), WithOutput(&out)); err != nil {
		t.Fatal(err)
	}
	if got, _ := ReadFile(path); got != "Initial Content\n" {
		t.Errorf("ReadFile() after skip = %q", got)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("skip notice missing, got %q", out.String())
	}

	if err := WriteFile("Forced Content", path, Force(), Silent(), WithOutput(&out)); err != nil {
		t.Fatal(err)
	}
	if got, _ := ReadFile(path); got != "Forced Content\n" {
		t.Errorf("ReadFile() after force = %q", got)
	}
}

func TestWriteFile_Notices(t *testing.T) {
	path := stashtest.Path(t, "n.txt")
	var out bytes.Buffer

	if err := WriteFile("a", path, WithOutput(&out)); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile("b", path, WithOutput(&out)); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"[INFO] save to " + path,
		"[INFO] " + path + " already exists.",
	}
	if got := stashtest.Notices(&out); !reflect.DeepEqual(got, want) {
		t.Errorf("notices = %q, want %q", got, want)
	}
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	path := stashtest.Path(t, "deep", "er", "file.txt")
	if err := WriteFile([]string{"x"}, path, Silent()); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir missing: %v", err)
	}
}

func TestWriteFile_LFOnly(t *testing.T) {
	path := stashtest.Path(t, "lf.txt")
	if err := WriteFile([]string{"a", "b"}, path, Silent()); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if bytes.Contains(data, []byte("\r")) {
		t.Errorf("content contains CR: %q", data)
	}
}

func TestAppendFile(t *testing.T) {
	path := stashtest.Path(t, "sub", "test.txt")

	if err := AppendFile("First Line", path); err != nil {
		t.Fatalf("AppendFile() error: %v", err)
	}
	if got, _ := ReadLines(path); !reflect.DeepEqual(got, []string{"First Line"}) {
		t.Errorf("ReadLines() = %q", got)
	}

	if err := AppendFile([]string{"Second", "Third"}, path); err != nil {
		t.Fatalf("AppendFile() error: %v", err)
	}
	want := []string{"First Line", "Second", "Third"}
	if got, _ := ReadLines(path); !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}
}

func TestAppendFile_MatchesWriteOnFreshPath(t *testing.T) {
	a := stashtest.Path(t, "a.txt")
	w := stashtest.Path(t, "w.txt")
	lines := []string{"one", "two"}

	if err := AppendFile(lines, a); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(lines, w, Silent()); err != nil {
		t.Fatal(err)
	}

	da, _ := os.ReadFile(a)
	dw, _ := os.ReadFile(w)
	if !bytes.Equal(da, dw) {
		t.Errorf("append = %q, write = %q", da, dw)
	}
}

func TestText_TypeErrors(t *testing.T) {
	path := stashtest.Path(t, "test.txt")

	err := WriteFile([]int{1, 2, 3}, path)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("WriteFile([]int) error = %v, want ErrTypeMismatch", err)
	}
	if err == nil || !strings.Contains(err.Error(), "index 0") {
		t.Errorf("error should name index 0: %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("failed WriteFile should not create the file")
	}

	err = AppendFile(map[string]any{}, path)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AppendFile(map) error = %v, want ErrTypeMismatch", err)
	}

	// Content is checked even when the file already exists.
	if err := WriteFile("x", path, Silent()); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile([]any{"ok", 7}, path); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("WriteFile(bad) on existing path error = %v, want ErrTypeMismatch", err)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(stashtest.Path(t, "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Errorf("error should be *fs.PathError, got %T", err)
	}
}

func TestReadFile_InvalidUTF8(t *testing.T) {
	path := stashtest.Path(t, "bin.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); !errors.Is(err, ErrMalformed) {
		t.Errorf("ReadFile() error = %v, want ErrMalformed", err)
	}
	if _, err := ReadLines(path); !errors.Is(err, ErrMalformed) {
		t.Errorf("ReadLines() error = %v, want ErrMalformed", err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\rb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"a\r\n\r\nb", []string{"a", "", "b"}},
		{"a\r\rb", []string{"a", "", "b"}},
		{"\r\n", []string{""}},
		{"a\fb\u2028c\n", []string{"a", "b", "c"}},
		{"a\vb\x1cc\x1dd\x1ee", []string{"a", "b", "c", "d", "e"}},
		{"é\u0085ü\u2029", []string{"é", "ü"}},
		{"tab\tstays", []string{"tab\tstays"}},
	}

	for _, tt := range tests {
		if got := splitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadLines_UnicodeBoundaries(t *testing.T) {
	path := stashtest.Path(t, "ff.txt")
	if err := os.WriteFile(path, []byte("a\fb\u2028c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}
}
