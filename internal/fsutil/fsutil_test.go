package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

func TestCopyTree(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	writeFile(t, filepath.Join(src, "a.txt"), "alpha", 0644)
	writeFile(t, filepath.Join(src, "nested", "deep", "b.txt"), "beta", 0600)

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(src, "a.txt"), mtime, mtime))

	dst := filepath.Join(t.TempDir(), "out", "copy")
	n, err := CopyTree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dst, "nested", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))

	info, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))

	if runtime.GOOS != "windows" {
		info, err = os.Stat(filepath.Join(dst, "nested", "deep", "b.txt"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestCopyTree_DestinationExists(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "alpha", 0644)

	dst := t.TempDir()
	_, err := CopyTree(src, dst)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCopyTree_MissingSource(t *testing.T) {
	_, err := CopyTree(filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "dst"))
	assert.Error(t, err)
}

func TestCopyFile_CreatesParents(t *testing.T) {
	src := filepath.Join(t.TempDir(), "build.gradle")
	writeFile(t, src, "apply plugin", 0644)

	dst := filepath.Join(t.TempDir(), "Projects", "Android", "build.gradle")
	require.NoError(t, CopyFile(src, dst))
	assert.FileExists(t, dst)
}

func TestCopyTree_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	base := t.TempDir()
	target := filepath.Join(base, "shared.txt")
	writeFile(t, target, "shared", 0644)

	src := filepath.Join(base, "src")
	writeFile(t, filepath.Join(src, "own.txt"), "own", 0644)
	require.NoError(t, os.Symlink(target, filepath.Join(src, "link.txt")))

	dst := filepath.Join(t.TempDir(), "copy")
	n, err := CopyTree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	info, err := os.Lstat(filepath.Join(dst, "link.txt"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	data, err := os.ReadFile(filepath.Join(dst, "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, "shared", string(data))
}

func TestCopyFile_KeepsModeAndTime(t *testing.T) {
	src := filepath.Join(t.TempDir(), "build.py")
	writeFile(t, src, "print('build')", 0700)
	mtime := time.Date(2019, 6, 7, 8, 9, 10, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dst := filepath.Join(t.TempDir(), "build.py")
	require.NoError(t, CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	}
}

func TestCopyFile_RejectsDirectory(t *testing.T) {
	err := CopyFile(t.TempDir(), filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}

func TestChmodTree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a", 0600)
	writeFile(t, filepath.Join(root, "dir", "b.txt"), "b", 0400)
	require.NoError(t, os.Chmod(filepath.Join(root, "dir"), 0700))

	require.NoError(t, ChmodTree(root, 0755))

	for _, p := range []string{root, "a.txt", "dir", filepath.Join("dir", "b.txt")} {
		if p != root {
			p = filepath.Join(root, p)
		}
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), p)
	}
}

func TestRemoveBySuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "strings.deleteme"), "x", 0644)
	writeFile(t, filepath.Join(root, "sub", "build.deleteme"), "x", 0644)
	writeFile(t, filepath.Join(root, "sub", "build.gradle"), "x", 0644)

	n, err := RemoveBySuffix(root, ".deleteme")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.NoFileExists(t, filepath.Join(root, "strings.deleteme"))
	assert.NoFileExists(t, filepath.Join(root, "sub", "build.deleteme"))
	assert.FileExists(t, filepath.Join(root, "sub", "build.gradle"))
}
