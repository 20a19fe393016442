package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/vadar/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the vadar config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetConfigFilePath()
		}

		if _, err := os.Stat(path); err == nil && !force {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite it.")
			return nil
		}

		if err := config.SaveConfig(path, config.Default()); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
