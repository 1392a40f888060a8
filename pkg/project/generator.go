// Package project generates a new VR application from the template tree.
//
// A Generator copies the manifest's trees and files into a sibling directory
// named after the project, opens up permissions, and rebrands the copy by
// literal text substitution. A failure part way through leaves the partially
// written project in place; nothing is rolled back.
package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"vrtool/internal/fsutil"
	"vrtool/pkg/template"
)

var (
	ErrMissingProjectName = errors.New("project name is required")
	ErrDestinationExists  = errors.New("destination directory already exists")
)

type Options struct {
	ProjectName string
	// CompanyName defaults to the manifest's placeholder when empty.
	CompanyName string
	// TemplateDir is the template checkout to copy from. Defaults to ".".
	TemplateDir string
	// DestRoot is the directory the project is created in. Defaults to "..".
	DestRoot string
}

type Result struct {
	Dest        string
	Project     string
	Company     string
	Copied      int
	Substituted int
	Swept       int
}

type Generator struct {
	manifest *template.Manifest
	logger   *slog.Logger
}

func NewGenerator(manifest *template.Manifest, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{manifest: manifest, logger: logger}
}

// Destination returns the absolute path the project would be written to.
// The project name must be a single path element.
func Destination(opts Options) (string, error) {
	if opts.ProjectName == "" {
		return "", ErrMissingProjectName
	}
	if err := template.CheckName("project name", opts.ProjectName); err != nil {
		return "", err
	}
	root := opts.DestRoot
	if root == "" {
		root = ".."
	}
	return filepath.Abs(filepath.Join(root, opts.ProjectName))
}

// Check verifies the destination preconditions for opts and returns the
// destination. It does not need a manifest.
func Check(opts Options) (string, error) {
	dest, err := Destination(opts)
	if err != nil {
		return "", err
	}
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check destination: %w", err)
	}
	return dest, nil
}

// Check runs Check and also rejects a company name that would not stay a
// single path element once normalized.
func (g *Generator) Check(opts Options) (string, error) {
	dest, err := Check(opts)
	if err != nil {
		return "", err
	}
	if err := template.CheckName("company name", g.manifest.NormalizeCompany(opts.CompanyName)); err != nil {
		return "", err
	}
	return dest, nil
}

func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	dest, err := g.Check(opts)
	if err != nil {
		return nil, err
	}

	templateDir := opts.TemplateDir
	if templateDir == "" {
		templateDir = "."
	}

	company := g.manifest.NormalizeCompany(opts.CompanyName)
	plan, err := g.manifest.Render(template.NewVars(opts.ProjectName, company))
	if err != nil {
		return nil, err
	}
	mode, err := g.manifest.FileMode()
	if err != nil {
		return nil, err
	}

	result := &Result{Dest: dest, Project: opts.ProjectName, Company: company}
	log := g.logger.With("project", opts.ProjectName, "dest", dest)

	for _, tree := range plan.Trees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := fsutil.CopyTree(filepath.Join(templateDir, tree.Src), filepath.Join(dest, tree.Dst))
		if err != nil {
			return nil, err
		}
		log.Debug("copied tree", "src", tree.Src, "dst", tree.Dst, "files", n)
		result.Copied += n
	}

	for _, file := range plan.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := fsutil.CopyFile(filepath.Join(templateDir, file.Src), filepath.Join(dest, file.Dst)); err != nil {
			return nil, err
		}
		log.Debug("copied file", "src", file.Src, "dst", file.Dst)
		result.Copied++
	}

	if err := fsutil.ChmodTree(dest, mode); err != nil {
		return nil, err
	}
	log.Debug("set permissions", "mode", mode)

	for _, sub := range plan.Substitutions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dest, sub.File)
		changed, err := ReplaceInFile(path, sub.Find, sub.Replace, g.manifest.BackupSuffix)
		if err != nil {
			return nil, err
		}
		log.Debug("substituted", "file", sub.File, "find", sub.Find, "replace", sub.Replace, "lines", changed)
		if changed > 0 {
			result.Substituted++
		}
	}

	swept, err := SweepBackups(dest, g.manifest.BackupSuffix)
	if err != nil {
		return nil, err
	}
	result.Swept = swept

	log.Info("project generated", "company", company, "files", result.Copied)
	return result, nil
}
