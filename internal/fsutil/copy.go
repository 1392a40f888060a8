// Package fsutil implements the tree copy and permission helpers used by the
// project generator.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// copyOptions follow symlinks and keep permission bits and modification times.
var copyOptions = copy.Options{
	OnSymlink:     func(string) copy.SymlinkAction { return copy.Deep },
	PreserveTimes: true,
}

// CopyTree copies the directory src to dst, which must not exist yet.
// Symlinks are followed. File modes and modification times are preserved.
// It returns the number of regular files written.
func CopyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("copy tree %s: not a directory", src)
	}
	if _, err := os.Lstat(dst); err == nil {
		return 0, fmt.Errorf("copy tree %s: destination %s already exists", src, dst)
	}

	if err := copy.Copy(src, dst, copyOptions); err != nil {
		return 0, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return countFiles(dst)
}

// CopyFile copies a regular file, keeping its permission bits and
// modification time. An existing dst is overwritten.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	if err := copy.Copy(src, dst, copyOptions); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}

func countFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to count files in %s: %w", root, err)
	}
	return count, nil
}
