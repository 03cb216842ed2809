// Package filestore is the file gateway behind the /files routes: byte-level
// read and write of one fixed directory, keyed by filename.
//
// The store does no locking. Concurrent writers to the same name race at OS
// granularity (last write wins), and a concurrent reader may observe a
// partial or stale file.
package filestore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidName = errors.New("invalid file name")
	ErrNotFound    = errors.New("file not found")
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Read returns the contents of name. Every open or read failure maps to
// ErrNotFound; callers cannot distinguish a missing file from an unreadable
// one, and don't need to.
func (s *Store) Read(name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "reading %q: %s", name, err)
	}

	return data, nil
}

// Write stores data under name, overwriting any previous contents.
func (s *Store) Write(name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
	return errors.Wrapf(err, "writing %q", name)
}

// validateName rejects names that could escape the store's directory before
// any filesystem call: empty names, dot names, and anything containing a
// path separator. With separators gone, ".." can only appear as the whole
// name, so these checks are complete.
func validateName(name string) error {
	switch {
	case name == "" || name == "." || name == "..":
		return errors.Wrapf(ErrInvalidName, "%q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Wrapf(ErrInvalidName, "%q contains a path separator", name)
	}
	return nil
}
