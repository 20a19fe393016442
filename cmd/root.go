package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/vadar/internal/config"
	"github.com/arcanaland/vadar/internal/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vadar",
	Short: "Card-drawing fortune teller and UUID service",
	Long: `Vadar draws three cards from a 54-card deck (52 cards plus two jokers),
reads their meanings and asks a text generation service to tell your fortune.

It also ships a small HTTP service that hands out random UUIDv4 identifiers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up GEMINI_API_KEY and friends from .env
		config.LoadEnv()
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/vadar/config.toml)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from config)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the config named by --config, or the default config file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadConfig()
}

// newLogger builds the stderr logger. The level is taken from --log-level,
// then LOG_LEVEL, then the config file.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = cfg.Log.Level
	}
	return logging.New(os.Stderr, level)
}
