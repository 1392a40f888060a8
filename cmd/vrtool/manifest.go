package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the file list and substitutions used by 'new'",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("manifest")
		m, err := loadManifest(firstNonEmpty(path, cfg.Generate.Manifest))
		if err != nil {
			return err
		}

		data, err := m.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	manifestCmd.Flags().String("manifest", "", "Manifest file to show instead of the built-in one")
	rootCmd.AddCommand(manifestCmd)
}
