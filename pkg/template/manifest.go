package template

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	texttemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed vrtemplate.yaml
var defaultManifest []byte

// ErrInvalidName is returned for project or company names that are not a
// single path element.
var ErrInvalidName = errors.New("invalid name")

const (
	DefaultCompany      = "yourcompany"
	DefaultPermissions  = "0755"
	DefaultBackupSuffix = ".deleteme"
)

// Default returns the built-in VrTemplate manifest.
func Default() (*Manifest, error) {
	return Parse(defaultManifest)
}

// Load reads a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.DefaultCompany == "" {
		m.DefaultCompany = DefaultCompany
	}
	if m.Permissions == "" {
		m.Permissions = DefaultPermissions
	}
	if m.BackupSuffix == "" {
		m.BackupSuffix = DefaultBackupSuffix
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

func (m *Manifest) Validate() error {
	if _, err := m.FileMode(); err != nil {
		return err
	}
	if !strings.HasPrefix(m.BackupSuffix, ".") {
		return fmt.Errorf("backup suffix %q must start with a dot", m.BackupSuffix)
	}

	for _, group := range [][]CopyEntry{m.Trees, m.Files} {
		for _, e := range group {
			if err := checkPath("source", e.Src); err != nil {
				return err
			}
			if err := checkPath("destination", e.Dst); err != nil {
				return err
			}
		}
	}

	for i, s := range m.Substitutions {
		if err := checkPath("substitution file", s.File); err != nil {
			return err
		}
		if s.Find == "" {
			return fmt.Errorf("substitution %d on %s has an empty find string", i, s.File)
		}
		if strings.HasSuffix(s.File, m.BackupSuffix) {
			return fmt.Errorf("substitution %d on %s: file cannot end in the backup suffix %s", i, s.File, m.BackupSuffix)
		}
	}
	return nil
}

// FileMode parses the octal permission string applied to generated files.
func (m *Manifest) FileMode() (os.FileMode, error) {
	perm, err := strconv.ParseUint(m.Permissions, 8, 32)
	if err != nil || perm > 0o777 {
		return 0, fmt.Errorf("invalid permissions %q: expected octal mode such as 0755", m.Permissions)
	}
	return os.FileMode(perm), nil
}

// NormalizeCompany applies the default and the case-folding rules.
func (m *Manifest) NormalizeCompany(name string) string {
	if name == "" {
		return m.DefaultCompany
	}
	for _, fold := range m.FoldCompanies {
		if name == fold {
			return strings.ToLower(name)
		}
	}
	return name
}

// Render resolves the manifest for a single project.
func (m *Manifest) Render(vars Vars) (*Plan, error) {
	if err := CheckName("project name", vars.Project); err != nil {
		return nil, err
	}
	if err := CheckName("company name", vars.Company); err != nil {
		return nil, err
	}

	plan := &Plan{}

	renderEntries := func(entries []CopyEntry) ([]CopyEntry, error) {
		out := make([]CopyEntry, 0, len(entries))
		for _, e := range entries {
			dst, err := expand(e.Dst, vars)
			if err != nil {
				return nil, err
			}
			if err := checkPath("destination", dst); err != nil {
				return nil, err
			}
			out = append(out, CopyEntry{Src: filepath.FromSlash(e.Src), Dst: filepath.FromSlash(dst)})
		}
		return out, nil
	}

	var err error
	if plan.Trees, err = renderEntries(m.Trees); err != nil {
		return nil, err
	}
	if plan.Files, err = renderEntries(m.Files); err != nil {
		return nil, err
	}

	for _, s := range m.Substitutions {
		file, err := expand(s.File, vars)
		if err != nil {
			return nil, err
		}
		if err := checkPath("substitution file", file); err != nil {
			return nil, err
		}
		replace, err := expand(s.Replace, vars)
		if err != nil {
			return nil, err
		}
		plan.Substitutions = append(plan.Substitutions, Substitution{
			File:    filepath.FromSlash(file),
			Find:    s.Find,
			Replace: replace,
		})
	}

	return plan, nil
}

func expand(text string, vars Vars) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	tmpl, err := texttemplate.New("manifest").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("invalid manifest value %q: %w", text, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", text, err)
	}
	return buf.String(), nil
}

func checkPath(kind, p string) error {
	if p == "" {
		return fmt.Errorf("%s path cannot be empty", kind)
	}
	if !filepath.IsLocal(filepath.FromSlash(p)) {
		return fmt.Errorf("%s path %q must stay inside the project", kind, p)
	}
	return nil
}

// CheckName rejects values that would not stay a single path element once
// joined into a project path.
func CheckName(kind, v string) error {
	if v == "" || v == "." || v == ".." || filepath.Base(v) != v || strings.ContainsAny(v, `/\`) {
		return fmt.Errorf("%w: %s %q must stay inside the project as a single path element", ErrInvalidName, kind, v)
	}
	return nil
}
