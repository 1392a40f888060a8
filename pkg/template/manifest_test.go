package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "vrtemplate", m.Name)
	assert.Equal(t, "yourcompany", m.DefaultCompany)
	assert.Equal(t, ".deleteme", m.BackupSuffix)
	assert.Len(t, m.Trees, 5)
	assert.Len(t, m.Files, 5)
	assert.Len(t, m.Substitutions, 15)

	mode, err := m.FileMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), mode)
}

func TestNormalizeCompany(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", "yourcompany"},
		{"Oculus", "oculus"},
		{"oculus", "oculus"},
		{"OCULUS", "OCULUS"},
		{"Acme", "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, m.NormalizeCompany(tt.in))
		})
	}
}

func TestRender(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	plan, err := m.Render(NewVars("MyGame", "acme"))
	require.NoError(t, err)

	java := plan.Trees[len(plan.Trees)-1]
	assert.Equal(t, filepath.FromSlash("java/com/yourcompany/vrtemplate"), java.Src)
	assert.Equal(t, filepath.FromSlash("java/com/acme/mygame"), java.Dst)

	first := plan.Substitutions[0]
	assert.Equal(t, filepath.FromSlash("res/values/strings.xml"), first.File)
	assert.Equal(t, "VR Template", first.Find)
	assert.Equal(t, "MyGame", first.Replace)

	var jni Substitution
	for _, s := range plan.Substitutions {
		if s.File == filepath.FromSlash("Src/OvrApp.cpp") {
			jni = s
		}
	}
	assert.Equal(t, "Java_com_acme_mygame_MainActivity_nativeSetAppInterface", jni.Replace)
}

func TestRender_RejectsEscapingCompany(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	_, err = m.Render(NewVars("game", "../../etc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Contains(t, err.Error(), "inside the project")
}

func TestRender_RejectsEscapingNames(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name    string
		project string
		company string
	}{
		{"parent project", "../Escaped", "acme"},
		{"dot project", ".", "acme"},
		{"dotdot project", "..", "acme"},
		{"nested project", "a/b", "acme"},
		{"absolute company", "game", "/etc"},
		{"dotdot company", "game", ".."},
		{"backslash company", "game", `acme\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Render(NewVars(tt.project, tt.company))
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, CheckName("project name", "MyGame"))
	assert.NoError(t, CheckName("company name", "oculus"))
	assert.Error(t, CheckName("project name", ""))
	assert.Error(t, CheckName("project name", "../x"))
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse([]byte(`
name: tiny
trees:
  - src: assets
    dst: assets
`))
	require.NoError(t, err)

	assert.Equal(t, DefaultCompany, m.DefaultCompany)
	assert.Equal(t, DefaultPermissions, m.Permissions)
	assert.Equal(t, DefaultBackupSuffix, m.BackupSuffix)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"absolute source": `
trees:
  - src: /etc
    dst: etc
`,
		"empty find": `
substitutions:
  - file: a.txt
    find: ""
    replace: b
`,
		"bad permissions": `
permissions: "rwx"
`,
		"suffix without dot": `
backup_suffix: bak
`,
		"substitution on a backup file": `
substitutions:
  - file: res/values/strings.deleteme
    find: a
    replace: b
`,
		"not yaml": `trees: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	data, err := m.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
