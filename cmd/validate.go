package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [hand]",
	Short: "Check that a hand could be dealt from one deck",
	Long: `Validate parses a hand and reports problems that ranking alone ignores,
such as the same card appearing twice. Notation that is valid but not
canonical, such as "ah" for "Ah", is reported as a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		out := cmd.OutOrStdout()

		v := validator.NewValidator(text)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Hand '%s' is valid (%s).\n", v.Hand, rankLabel(v.Hand.Rank()))
		} else {
			fmt.Fprintf(out, "❌ Hand '%s' has %d validation errors:\n", v.Hand, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
