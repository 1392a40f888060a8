package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vrtool/internal/fsutil"
)

// BackupPath is path with its extension swapped for suffix.
func BackupPath(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

// ReplaceInFile replaces every occurrence of find on each line that contains
// it and returns the number of lines changed. An unmodified copy is written to
// BackupPath(path, backupSuffix) first and removed again before returning,
// whether or not the rewrite succeeded. Line endings are kept as they are.
func ReplaceInFile(path, find, replace, backupSuffix string) (changed int, err error) {
	backup := BackupPath(path, backupSuffix)
	if backup == path {
		return 0, fmt.Errorf("cannot substitute in %s: it has the backup suffix %s", path, backupSuffix)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write backup %s: %w", backup, err)
	}
	defer func() {
		if rmErr := os.Remove(backup); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = fmt.Errorf("failed to remove backup %s: %w", backup, rmErr)
		}
	}()

	lines := strings.SplitAfter(string(data), "\n")
	for i, line := range lines {
		if strings.Contains(line, find) {
			lines[i] = strings.ReplaceAll(line, find, replace)
			changed++
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), info.Mode().Perm()); err != nil {
		return changed, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return changed, nil
}

// SweepBackups removes backup files left under root by interrupted runs.
func SweepBackups(root, suffix string) (int, error) {
	n, err := fsutil.RemoveBySuffix(root, suffix)
	if err != nil {
		return n, fmt.Errorf("failed to clean up backups: %w", err)
	}
	return n, nil
}
