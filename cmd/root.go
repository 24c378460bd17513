package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/config"
)

var (
	cfg    *config.Config
	logger = log.Default()

	logLevelFlag string
	colorFlag    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "handrank",
	Short: "Classify five-card poker hands",
	Long: `Handrank is a command-line tool for classifying five-card poker hands
into their rank category, from High Card up to Royal Flush.

Cards are written as a face (2-10, J, Q, K, A) followed by a suit
(c, s, h, d), for example "Ah Qs 10c 10d 10s".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error, fatal)")
	RootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colour output (auto, always, never)")
}

// setup loads the config file, applies flag overrides and builds the logger.
// A config file that cannot be loaded is reported and replaced by defaults so
// that classifying never depends on it; invalid flags are still an error.
func setup(cmd *cobra.Command, args []string) error {
	c, loadErr := config.LoadConfig()
	if loadErr != nil {
		c = config.Default()
	}

	if err := applyFlags(cmd, c); err != nil {
		return err
	}

	if loadErr != nil {
		logger.Warn("ignoring config file, using defaults", "path", config.GetConfigFilePath(), "err", loadErr)
	}

	cfg = c
	logger.Debug("loaded config", "path", config.GetConfigFilePath(), "color", c.Color, "workers", c.Workers)
	return nil
}

// setupWithoutConfig builds the logger from flags and defaults only, so the
// config commands keep working when the config file is broken
func setupWithoutConfig(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if err := applyFlags(cmd, c); err != nil {
		return err
	}
	cfg = c
	return nil
}

// applyFlags overrides c with the persistent flags, then configures logging and colour from it
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevelFlag
	}
	if cmd.Flags().Changed("color") {
		c.Color = colorFlag
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "handrank",
	})

	applyColorMode(c.Color)
	return nil
}
