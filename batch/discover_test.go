package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.PNG", "z/y.png", "m/n/o.png", "skip.jpg", "png", "dir.png/x.txt"} {
		touch(t, filepath.Join(dir, name))
	}

	files, err := Discover(dir, []string{"png"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.PNG", "b.png", "m/n/o.png", "z/y.png"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i, f := range files {
		rel, _ := filepath.Rel(dir, f)
		if filepath.ToSlash(rel) != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, rel, want[i])
		}
	}
}

func TestDiscoverExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.bmp"))
	touch(t, filepath.Join(dir, "b.tiff"))
	touch(t, filepath.Join(dir, "c.png"))

	files, err := Discover(dir, []string{".BMP", " tiff"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want 2 entries", files)
	}
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Discover(filepath.Join(dir, "nope"), []string{"png"}); !errors.Is(err, ErrDirNotFound) {
		t.Errorf("missing dir: err = %v, want ErrDirNotFound", err)
	}

	file := filepath.Join(dir, "file.png")
	touch(t, file)
	if _, err := Discover(file, []string{"png"}); !errors.Is(err, ErrDirNotFound) {
		t.Errorf("file as root: err = %v, want ErrDirNotFound", err)
	}

	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(empty, []string{"png"}); !errors.Is(err, ErrNoFiles) {
		t.Errorf("empty dir: err = %v, want ErrNoFiles", err)
	}
}
