// Package backup copies the source tree aside before it is mutated.
//
// The copy is the only safety net against the destructive in-place resize:
// it must fully succeed before any file is touched. A failed copy may leave
// a partial backup directory behind; there is no rollback.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	derrors "downsizer/pkg/errors"
)

// Copier creates a sibling backup of a directory tree.
type Copier struct {
	// Suffix is appended to the source directory name to form the
	// backup directory name
	Suffix string
}

// New creates a Copier with the given directory name suffix.
func New(suffix string) *Copier {
	return &Copier{Suffix: suffix}
}

// Destination returns the backup path for a source directory: a sibling
// named after the source with the suffix appended.
func (c *Copier) Destination(src string) string {
	return filepath.Join(filepath.Dir(src), filepath.Base(src)+c.Suffix)
}

// Backup recursively copies src into its sibling backup directory and
// returns the destination path. It refuses to overwrite an existing
// destination.
func (c *Copier) Backup(src string) (string, error) {
	dst := c.Destination(src)

	if _, err := os.Lstat(dst); err == nil {
		return "", derrors.New(derrors.ErrorTypeBackupExists, dst,
			fmt.Errorf("backup destination already exists"))
	}

	if err := copyTree(src, dst); err != nil {
		return "", err
	}

	return dst, nil
}

// copyTree copies the whole directory tree, preserving file modes.
func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return derrors.New(derrors.ErrorTypeWalk, path, err)
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return derrors.New(derrors.ErrorTypeWalk, path, err)
		}
		target := filepath.Join(dst, relPath)

		if info.IsDir() {
			if err := os.MkdirAll(target, info.Mode()); err != nil {
				return derrors.New(derrors.ErrorTypeWrite, target, err)
			}
			return nil
		}

		return copyFile(path, target, info.Mode())
	})
}

// copyFile copies a single file
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return derrors.New(derrors.ErrorTypePermission, src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return derrors.New(derrors.ErrorTypeWrite, dst, err)
	}

	_, err = io.Copy(out, in)
	closeErr := out.Close()

	if err != nil {
		return derrors.New(derrors.ErrorTypeWrite, dst, err)
	}
	if closeErr != nil {
		return derrors.New(derrors.ErrorTypeWrite, dst, closeErr)
	}

	return nil
}
