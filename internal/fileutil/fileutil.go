// Public domain.

// Package fileutil holds the existence check every varphot command runs
// before it opens an input file.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrFileNotFound is returned by Check when the named path does not exist
// or names a directory.
var ErrFileNotFound = errors.New("file doesn't exist")

// Check reports whether fn names an existing regular file.
//
// The returned error wraps ErrFileNotFound for a missing file or a
// directory.  Other stat failures, permission errors for example, are
// returned wrapped but not as ErrFileNotFound.
func Check(fn string) error {
	fi, err := os.Stat(fn)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w", fn, ErrFileNotFound)
	case err != nil:
		return fmt.Errorf("%s: %w", fn, err)
	case fi.IsDir():
		return fmt.Errorf("%s is a directory: %w", fn, ErrFileNotFound)
	}
	return nil
}
