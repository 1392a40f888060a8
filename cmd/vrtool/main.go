package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"vrtool/pkg/config"
)

var (
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "vrtool",
	Short: "VR application template tools",
	Long: `Tools for the native VR application template.

  vrtool new <project_name> [<company_name>]   - Create a project from the template
  vrtool push                                  - Push sdcard_SDK media to the device`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default vrtool configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteDefaultConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration: %s\n", path)
		fmt.Println("")
		fmt.Println("Next steps:")
		fmt.Println("  vrtool new <project_name> [company]  - Create a project")
		fmt.Println("  vrtool push                          - Push media to the device")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.vrtool/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(initCmd)
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
