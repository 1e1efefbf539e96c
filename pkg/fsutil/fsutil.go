// Package fsutil provides the small set of filesystem operations the
// release tasks need: an rm-like removal with glob, recursive and force
// modes, and a parent-directory creation helper.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrIsDirectory reports an attempt to remove a directory without
// RemoveOptions.Recursive.
var ErrIsDirectory = errors.New("is a directory, removal requires recursive")

// ErrUnsupportedType reports a path that is neither a regular file, a
// symlink, nor a directory (device node, socket, ...).
var ErrUnsupportedType = errors.New("unsupported file type")

// RemoveOptions controls Remove behavior.
type RemoveOptions struct {
	// Recursive permits directory removal.
	Recursive bool
	// Force suppresses not-found errors and tolerates paths that vanish
	// while being removed.
	Force bool
	// Glob treats the path as a pattern expanded within its parent
	// directory.
	Glob bool
}

// Remove deletes files or directories like the Unix rm command.
//
// Without Glob the path names exactly one filesystem entry. Symlinks and
// regular files are unlinked; directories need Recursive; anything else
// fails unless Force. A missing path is an error unless Force.
func Remove(path string, opts RemoveOptions) error {
	paths := []string{path}
	if opts.Glob {
		matches, err := filepath.Glob(path)
		if err != nil {
			return fmt.Errorf("glob %q: %w", path, err)
		}
		paths = matches
	}

	for _, p := range paths {
		if err := removeOne(p, opts); err != nil {
			return err
		}
	}
	return nil
}

func removeOne(path string, opts RemoveOptions) error {
	// Lstat so a symlink is removed itself, never its target.
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) && opts.Force {
			return nil
		}
		return err
	}

	switch mode := fi.Mode(); {
	case mode.IsRegular() || mode&os.ModeSymlink != 0:
		err = os.Remove(path)
	case mode.IsDir():
		if !opts.Recursive {
			return fmt.Errorf("remove %s: %w", path, ErrIsDirectory)
		}
		err = os.RemoveAll(path)
	default:
		if opts.Force {
			return nil
		}
		return fmt.Errorf("remove %s: %w", path, ErrUnsupportedType)
	}

	// The path may vanish between the stat and the delete.
	if err != nil && os.IsNotExist(err) && opts.Force {
		return nil
	}
	return err
}

// EnsureDir creates all missing ancestor directories of path's parent so
// that path itself can be written. It is idempotent.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
