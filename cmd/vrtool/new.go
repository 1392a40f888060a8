package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vrtool/pkg/project"
	"vrtool/pkg/telemetry"
	"vrtool/pkg/template"
)

const newUsage = "Usage: make_new_project [project name] [company name (no spaces or punctuation)]"

var (
	newTemplateDir string
	newDestRoot    string
	newManifest    string
)

var newCmd = &cobra.Command{
	Use:     "new <project_name> [<company_name>]",
	Aliases: []string{"make_new_project"},
	Short:   "Create a new project from the VR template",
	Long: `Copy the VR template into ../<project_name> and rebrand it.

The company name defaults to "yourcompany" and becomes part of the Java
package (com.<company>.<project>). Run from the template directory.

Examples:
  vrtool new MyGame
  vrtool new MyGame acme
  vrtool new MyGame acme --dest-root ~/projects`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := project.Options{
			TemplateDir: firstNonEmpty(newTemplateDir, cfg.Generate.TemplateDir),
			DestRoot:    firstNonEmpty(newDestRoot, cfg.Generate.DestRoot),
		}
		manifestPath := firstNonEmpty(newManifest, cfg.Generate.Manifest)

		return track("new", func(o *telemetry.Outcome) error {
			result, err := runNew(cmd.Context(), cmd.OutOrStdout(), args, opts, manifestPath)
			if result != nil {
				o.Project = result.Project
				o.FilesCopied = result.Copied
			}
			return err
		})
	},
}

func init() {
	newCmd.Flags().StringVar(&newTemplateDir, "template-dir", "", "Template checkout to copy from (default \".\")")
	newCmd.Flags().StringVar(&newDestRoot, "dest-root", "", "Directory the project is created in (default \"..\")")
	newCmd.Flags().StringVar(&newManifest, "manifest", "", "YAML manifest replacing the built-in file list")
	rootCmd.AddCommand(newCmd)
}

// runNew prints the usage and does nothing when no project name is given.
// Arguments after the company name are ignored.
func runNew(ctx context.Context, out io.Writer, args []string, opts project.Options, manifestPath string) (*project.Result, error) {
	if len(args) == 0 || args[0] == "" {
		fmt.Fprintln(out, newUsage)
		return nil, nil
	}
	opts.ProjectName = args[0]
	if len(args) > 1 {
		opts.CompanyName = args[1]
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := project.Check(opts); err != nil {
		return nil, fmt.Errorf("cannot create project: %w", err)
	}

	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	gen := project.NewGenerator(manifest, logger)
	if _, err := gen.Check(opts); err != nil {
		return nil, fmt.Errorf("cannot create project: %w", err)
	}

	fmt.Fprintf(out, "Project Name: %s\n", opts.ProjectName)
	fmt.Fprintf(out, "Company Name: %s\n", manifest.NormalizeCompany(opts.CompanyName))

	result, err := gen.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot create project: %w", err)
	}
	return result, nil
}

func loadManifest(path string) (*template.Manifest, error) {
	if path == "" {
		return template.Default()
	}
	return template.Load(path)
}
