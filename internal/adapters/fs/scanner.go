// Package fs discovers game executables under lookup folders.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// Scanner implements secondary.Scanner by walking the local filesystem.
type Scanner struct{}

// NewScanner creates a filesystem scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks the folder recursively and returns discovered executables keyed
// by display name. A display name is the file's base name without its
// extension; when two files share a name the later one wins, matching map
// assignment order during the walk. A missing folder returns ErrNotFound so
// the caller can count stale registrations without aborting.
func (s *Scanner) Scan(ctx context.Context, location string) (map[string]string, error) {
	found := make(map[string]string)

	root, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", location, err)
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("lookup folder '%s': %w", location, library.ErrNotFound)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees, keep walking.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if !isExecutable(path, info) {
			return nil
		}

		found[displayName(path)] = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// isExecutable reports whether a regular file looks launchable. Windows
// installs mark games with a .exe extension; elsewhere the executable mode
// bits decide.
func isExecutable(path string, info fs.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if strings.EqualFold(filepath.Ext(path), ".exe") {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// displayName derives the catalog name from a file path by stripping the
// directory and the extension.
func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ensure Scanner implements the interface.
var _ secondary.Scanner = (*Scanner)(nil)
