// Package storage keeps uploaded and generated files on the local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned for paths that leave the storage root.
var ErrInvalidPath = errors.New("invalid storage path")

// Local stores files below a root directory. Paths handed in and out are
// slash separated and relative to the root.
type Local struct {
	root string
}

// NewLocal creates the root directory if needed.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Local{root: root}, nil
}

// Root returns the root directory.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return filepath.Join(l.root, clean), nil
}

// Save copies r into dir under the base name of name. When that name is
// taken a short random prefix is added. Returns the stored relative path.
func (l *Local) Save(dir, name string, r io.Reader) (string, error) {
	base := filepath.Base(filepath.FromSlash(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = uuid.NewString() + ".bin"
	}
	dirPath, err := l.resolve(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(filepath.Join(dirPath, base), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		base = uuid.NewString()[:8] + "_" + base
		f, err = os.OpenFile(filepath.Join(dirPath, base), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(dir, base)), nil
}

// Write creates or truncates the file at rel.
func (l *Local) Write(rel string, data []byte) error {
	path, err := l.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Open opens the file at rel for reading.
func (l *Local) Open(rel string) (io.ReadCloser, error) {
	path, err := l.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Remove deletes the file at rel. A missing file is not an error.
func (l *Local) Remove(rel string) error {
	path, err := l.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
