package relocation_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/relocator/relocation"
)

func newRelocator(t *testing.T) *relocation.Relocator {
	t.Helper()

	r, err := relocation.New(relocation.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("creating relocator: %v", err)
	}

	return r
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}

	return string(b)
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected %s to not exist, stat err: %v", path, err)
	}
}

func TestMove_NewDestination(t *testing.T) {
	for _, overwrite := range []bool{false, true} {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		writeFile(t, src, "payload")

		if !newRelocator(t).Move(t.Context(), src, dst, overwrite) {
			t.Fatalf("overwrite=%v: expected move to succeed", overwrite)
		}

		if got := readFile(t, dst); got != "payload" {
			t.Errorf("overwrite=%v: expected %q, got %q", overwrite, "payload", got)
		}
		assertNotExist(t, src)
	}
}

func TestMove_ExistingNoOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "new.jar")
	dst := filepath.Join(dir, "old.jar")
	writeFile(t, src, "new content")
	writeFile(t, dst, "old content")

	if newRelocator(t).Move(t.Context(), src, dst, false) {
		t.Fatal("expected move onto existing file without overwrite to fail")
	}

	if got := readFile(t, dst); got != "old content" {
		t.Errorf("expected destination untouched, got %q", got)
	}
	if got := readFile(t, src); got != "new content" {
		t.Errorf("expected source untouched, got %q", got)
	}
}

func TestRelocate_ExistingNoOverwriteIsErrExist(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, src, "s")
	writeFile(t, dst, "d")

	err := newRelocator(t).Relocate(t.Context(), src, dst, false)
	if !errors.Is(err, relocation.ErrMoveFailure) {
		t.Errorf("expected ErrMoveFailure, got: %v", err)
	}
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected fs.ErrExist, got: %v", err)
	}
}

func TestMove_ExistingOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "new.jar")
	dst := filepath.Join(dir, "old.jar")
	content := strings.Repeat("fresh ", 512)
	writeFile(t, src, content)
	writeFile(t, dst, "old content that is longer than nothing")

	if !newRelocator(t).Move(t.Context(), src, dst, true) {
		t.Fatal("expected move with overwrite to succeed")
	}

	if diff := cmp.Diff(content, readFile(t, dst)); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
	assertNotExist(t, src)
}

func TestMove_AcrossDirectories(t *testing.T) {
	root := t.TempDir()
	downloads := filepath.Join(root, "downloads")
	plugins := filepath.Join(root, "plugins")
	for _, d := range []string{downloads, plugins} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	src := filepath.Join(downloads, "plugin.jar")
	dst := filepath.Join(plugins, "plugin.jar")
	writeFile(t, src, "jar")

	if !newRelocator(t).Move(t.Context(), src, dst, false) {
		t.Fatal("expected move to succeed")
	}
	if got := readFile(t, dst); got != "jar" {
		t.Errorf("expected %q, got %q", "jar", got)
	}
	assertNotExist(t, src)
}

func TestMove_MissingDestinationDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, src, "s")

	dst := filepath.Join(dir, "missing", "dst")
	if newRelocator(t).Move(t.Context(), src, dst, true) {
		t.Fatal("expected move into missing directory to fail")
	}
	assertNotExist(t, filepath.Dir(dst))
	if got := readFile(t, src); got != "s" {
		t.Errorf("expected source untouched, got %q", got)
	}
}

func TestMove_SameFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "self")
	writeFile(t, src, "self")

	for _, overwrite := range []bool{false, true} {
		if !newRelocator(t).Move(t.Context(), src, src, overwrite) {
			t.Errorf("overwrite=%v: expected moving a file onto itself to succeed", overwrite)
		}
		if got := readFile(t, src); got != "self" {
			t.Errorf("overwrite=%v: expected content preserved, got %q", overwrite, got)
		}
	}
}

func TestRelocate_Failures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file, "f")
	subdir := filepath.Join(dir, "subdir")
	if err := os.Mkdir(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		src, dst  string
		overwrite bool
		wantErr   error
	}{
		"empty source":      {src: "", dst: filepath.Join(dir, "x"), wantErr: relocation.ErrEmptyPath},
		"empty destination": {src: file, dst: "", wantErr: relocation.ErrEmptyPath},
		"missing source":    {src: filepath.Join(dir, "missing"), dst: filepath.Join(dir, "x"), wantErr: fs.ErrNotExist},
		"directory source":  {src: subdir, dst: filepath.Join(dir, "moved"), overwrite: true, wantErr: relocation.ErrNotRegularFile},
	}

	r := newRelocator(t)

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := r.Relocate(t.Context(), tt.src, tt.dst, tt.overwrite)
			if !errors.Is(err, relocation.ErrMoveFailure) {
				t.Errorf("expected ErrMoveFailure, got: %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got: %v", tt.wantErr, err)
			}

			if r.Move(t.Context(), tt.src, tt.dst, tt.overwrite) {
				t.Error("expected Move to report failure")
			}
		})
	}
}

func TestMove_OntoDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "file")
	writeFile(t, src, "f")
	dst := filepath.Join(dir, "occupied")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dst, "inner"), "i")

	for _, overwrite := range []bool{false, true} {
		if newRelocator(t).Move(t.Context(), src, dst, overwrite) {
			t.Errorf("overwrite=%v: expected move onto non-empty directory to fail", overwrite)
		}
	}
	if got := readFile(t, src); got != "f" {
		t.Errorf("expected source untouched, got %q", got)
	}
}

func TestMove_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	r, err := relocation.New(relocation.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	r.Move(t.Context(), filepath.Join(dir, "missing"), filepath.Join(dir, "dst"), false)

	if !strings.Contains(buf.String(), "move failed") {
		t.Errorf("expected failure to be logged, got: %s", buf.String())
	}
}

func TestPackageMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, src, "pkg")

	if !relocation.Move(t.Context(), src, dst, false) {
		t.Fatal("expected move to succeed")
	}
	if got := readFile(t, dst); got != "pkg" {
		t.Errorf("expected %q, got %q", "pkg", got)
	}
}

func TestNew_NilTracer(t *testing.T) {
	if _, err := relocation.New(relocation.WithTracer(nil)); err == nil {
		t.Fatal("expected error for nil tracer")
	}
}
