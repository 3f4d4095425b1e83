// Package cmd provides Cobra CLI commands for srec-dash.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/74587/srec-dash/internal/config"
)

var (
	cfgManager *config.Manager

	rootCmd = &cobra.Command{
		Use:   "srec-dash",
		Short: "Recording-session dashboard server and theme tools",
		Long: `srec-dash serves the recording-session dashboard shell and owns its
theme pipeline: persisted light/dark/system mode, OS preference
detection, CSS variable resolution and cross-process synchronization.

Use 'srec-dash serve' to start the dashboard, or the 'theme'
subcommands to inspect and change the theme from the terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			cfgManager, err = config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := cfgManager.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
