package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func noTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if matched, _ := filepath.Match("*.tmp.*", e.Name()); matched {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFuncCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favicon.png")

	if err := WriteFunc(path, 0o644, writeString("pixels")); err != nil {
		t.Fatalf("WriteFunc: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "pixels" {
		t.Errorf("content = %q, want %q", got, "pixels")
	}
	noTempFiles(t, dir)
}

func TestWriteFuncOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favicon.ico")

	if err := WriteFunc(path, 0o644, writeString("first")); err != nil {
		t.Fatalf("first WriteFunc: %v", err)
	}
	if err := WriteFunc(path, 0o644, writeString("second")); err != nil {
		t.Fatalf("second WriteFunc: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestWriteFuncFillErrorKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "favicon.png")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("encode failed")
	err := WriteFunc(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("content = %q, want original untouched", got)
	}
	noTempFiles(t, dir)
}

func TestWriteFuncMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "favicon.png")
	if err := WriteFunc(path, 0o644, writeString("x")); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
