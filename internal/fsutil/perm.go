package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ChmodTree sets mode on root and on every file and directory beneath it.
func ChmodTree(root string, mode fs.FileMode) error {
	if err := os.Chmod(root, mode); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", root, err)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", path, err)
		}
		return nil
	})
}

// RemoveBySuffix deletes every regular file under root whose extension equals
// suffix and returns how many were removed.
func RemoveBySuffix(root, suffix string) (int, error) {
	removed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != suffix {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
		return nil
	})
	return removed, err
}
