package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"res/values/strings.xml", "res/values/strings.deleteme"},
		{"Projects/Android/build.gradle", "Projects/Android/build.deleteme"},
		{"Makefile", "Makefile.deleteme"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BackupPath(tt.path, ".deleteme"))
	}
}

func TestReplaceInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.bat")
	content := "@echo vrtemplate\r\ncall vrtemplate vrtemplate\r\nrem untouched\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))

	changed, err := ReplaceInFile(path, "vrtemplate", "MyGame", ".deleteme")
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "@echo MyGame\r\ncall MyGame MyGame\r\nrem untouched\r\n", string(data))
	assert.NoFileExists(t, BackupPath(path, ".deleteme"))
}

func TestReplaceInFile_NoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.gradle")
	require.NoError(t, os.WriteFile(path, []byte("include ':app'"), 0644))

	changed, err := ReplaceInFile(path, "VrTemplate", "MyGame", ".deleteme")
	require.NoError(t, err)
	assert.Zero(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "include ':app'", string(data))
}

func TestReplaceInFile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.xml")

	_, err := ReplaceInFile(path, "a", "b", ".deleteme")
	assert.Error(t, err)
	assert.NoFileExists(t, BackupPath(path, ".deleteme"))
}

func TestReplaceInFile_BackupSuffixFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.deleteme")
	require.NoError(t, os.WriteFile(path, []byte("vrtemplate"), 0644))

	_, err := ReplaceInFile(path, "vrtemplate", "MyGame", ".deleteme")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vrtemplate", string(data))
}

func TestSweepBackups(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "res", "values"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "res", "values", "strings.deleteme"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "res", "values", "strings.xml"), nil, 0644))

	n, err := SweepBackups(root, ".deleteme")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(root, "res", "values", "strings.xml"))
}
