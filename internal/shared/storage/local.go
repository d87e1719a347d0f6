// Package storage keeps generated and uploaded files on the local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var ErrInvalidFileName = errors.New("invalid file name")

//go:generate mockgen -source=local.go -destination=mock/file_store_mock.go -package=mock
type FileStore interface {
	// Save writes r under name and returns the stored path and byte count.
	Save(ctx context.Context, name string, r io.Reader) (string, int64, error)
	// Remove deletes a path returned by Save. A missing file is not an error.
	Remove(ctx context.Context, path string) error
}

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save stores the file under the base name of name. Directory components are
// dropped so a client-supplied name can never escape the store directory.
// An existing file with the same name is replaced.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, int64, error) {
	base, err := CleanName(name)
	if err != nil {
		return "", 0, err
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create storage dir: %w", err)
	}

	path := filepath.Join(s.dir, base)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", base, err)
	}

	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write %s: %w", base, copyErr)
	}
	if closeErr != nil {
		return "", 0, fmt.Errorf("close %s: %w", base, closeErr)
	}

	return path, n, nil
}

func (s *LocalStore) Remove(ctx context.Context, path string) error {
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(s.dir) {
		return ErrInvalidFileName
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
	}
	return nil
}

// CleanName reduces a client-supplied file name to its last path element.
func CleanName(name string) (string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", ErrInvalidFileName
	}
	return base, nil
}

// SafeFileName folds anything outside letters, digits, '-' and '.' to '_'
// so a person's name can be used inside a generated file name.
func SafeFileName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, s)
}
