package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDirNotFound = errors.New("directory not found")
	ErrNoFiles     = errors.New("no matching files found")
)

// Discover walks root recursively and returns every regular file whose
// extension is one of exts, compared case-insensitively with or without the
// leading dot. Paths come back in lexical walk order.
func Discover(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrDirNotFound, root)
		}
		return nil, fmt.Errorf("cannot stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrDirNotFound, root)
	}

	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			want["."+ext] = struct{}{}
		}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := want[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan folder %q: %w", root, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q (extensions: %s)", ErrNoFiles, root, strings.Join(exts, ", "))
	}
	return files, nil
}
