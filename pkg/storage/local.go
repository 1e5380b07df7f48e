package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"syscall"
)

// LocalStore serves the public tree from a directory on disk
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	return &LocalStore{root: filepath.ToSlash(abs)}, nil
}

// Root returns the absolute, slash-separated public directory
func (s *LocalStore) Root() string {
	return s.root
}

// Backend identifies the local filesystem backend
func (s *LocalStore) Backend() string {
	return "local"
}

// IsDir reports whether name is an existing directory
func (s *LocalStore) IsDir(_ context.Context, name string) (bool, error) {
	info, err := os.Stat(filepath.FromSlash(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) || isNotDir(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ReadDir lists name, following symlinks to decide whether a child is a directory
func (s *LocalStore) ReadDir(_ context.Context, name string) ([]Entry, error) {
	dir := filepath.FromSlash(path.Clean(name))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("read dir %s: %w", name, err)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		out = append(out, Entry{Name: e.Name(), IsDir: isDir})
	}
	return out, nil
}

func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
