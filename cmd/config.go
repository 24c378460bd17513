package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Show or change the handrank configuration",
	PersistentPreRunE: setupWithoutConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config file path and its settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.ReadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := c.Validate(); err != nil {
			fmt.Fprintf(out, "# warning: %v\n", err)
		}
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(c)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config value (color, log_level, workers)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		// a file holding an invalid value must still be repairable
		c, err := config.ReadConfig()
		if err != nil {
			return err
		}

		switch key {
		case "color":
			c.Color = value
		case "log_level":
			c.LogLevel = value
		case "workers":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("workers must be a number: %w", err)
			}
			c.Workers = n
		default:
			return fmt.Errorf("unknown config key: %s (supported: color, log_level, workers)", key)
		}

		if err := config.SaveConfig(c); err != nil {
			return err
		}

		logger.Info("config updated", "key", key, "value", value)
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
