// Package output selects where a mapping is written and writes it.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDirectoryNotFound is returned when the destination's parent directory
// does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// DirectoryError reports the missing directory. It matches
// ErrDirectoryNotFound with errors.Is.
type DirectoryError struct {
	Dir string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDirectoryNotFound, e.Dir)
}

func (e *DirectoryError) Unwrap() error {
	return ErrDirectoryNotFound
}

// fileMode is applied to written mapping files.
const fileMode = 0o644

// Destination describes where Write puts the mapping.
type Destination struct {
	Path   string // File path, or "" for standard output
	Stdout bool   // Output goes to standard output
}

func (d Destination) String() string {
	if d.Stdout {
		return "<stdout>"
	}
	return d.Path
}

// Resolve checks path without touching any file.
//
//   - "" or "-" means stdout.
//   - An existing directory means stdout.
//   - A path whose parent directory is missing fails with ErrDirectoryNotFound.
//   - Anything else is a file destination.
func Resolve(path string) (Destination, error) {
	if path == "" || path == "-" {
		return Destination{Stdout: true}, nil
	}

	dir := filepath.Dir(path)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return Destination{}, &DirectoryError{Dir: dir}
	}

	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return Destination{Stdout: true}, nil
	}
	return Destination{Path: path}, nil
}

// Write delivers data to dest. File destinations are replaced atomically:
// data goes to a temporary file in the same directory, which is renamed
// over the target only after a complete write. On failure the previous
// file is left as it was.
func Write(dest Destination, stdout io.Writer, data []byte) error {
	if dest.Stdout {
		_, err := stdout.Write(data)
		return err
	}

	dir, base := filepath.Split(dest.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", dest.Path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", dest.Path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", dest.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dest.Path, err)
	}
	if err := os.Rename(tmpName, dest.Path); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return fmt.Errorf("replacing %s: %w", dest.Path, err)
	}
	committed = true
	return nil
}
