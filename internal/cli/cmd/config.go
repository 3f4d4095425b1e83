package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/74587/srec-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Printf("generated %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}
