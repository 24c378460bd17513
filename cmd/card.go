package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/card"
)

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card [token...]",
	Short: "Parse and describe card tokens",
	Long: `Card checks that each argument is a well-formed card token: a face
(2-10, J, Q, K, A) immediately followed by a suit (c, s, h, d).
Both parts are case-insensitive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var errs []error
		for _, token := range args {
			c, err := card.Parse(token)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fmt.Fprintf(out, "✅ %s: %s of %s %s\n", c, c.Face(), c.Suit(), cardLabel(c))
		}

		if len(errs) == 0 {
			return nil
		}

		fmt.Fprintf(out, "❌ %d invalid card(s):\n", len(errs))
		for i, err := range errs {
			fmt.Fprintf(out, "%d. %s\n", i+1, err)
		}
		return fmt.Errorf("validation failed")
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
}
