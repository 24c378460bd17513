package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/hand"
)

// demoHand is classified when rank is run without arguments
const demoHand = "Ah Qs 10c 10d 10s"

var rankCmd = &cobra.Command{
	Use:   "rank [hand...]",
	Short: "Classify one or more five-card hands",
	Long: `Rank classifies each argument as a five-card poker hand and prints its
rank category. Quote each hand so its five cards form one argument.
Without arguments an example hand is classified.

Examples:
  handrank rank "10h Jh Qh Kh Ah"
  handrank rank "2h 2d 3s 3c 3h" "5h 6h 7h 8h 9h"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printRank(cmd, hand.MustParse(demoHand))
			return nil
		}

		// a single hand reports its own error
		if len(args) == 1 {
			h, err := hand.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid hand %q: %w", args[0], err)
			}
			printRank(cmd, h)
			return nil
		}

		failed := 0
		for _, text := range args {
			h, err := hand.Parse(text)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", text, err)
				continue
			}
			printRank(cmd, h)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d hands could not be classified", failed, len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rankCmd)
}

func printRank(cmd *cobra.Command, h hand.Hand) {
	r := h.Rank()
	logger.Debug("classified hand", "hand", h, "rank", r)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", h, rankLabel(r))
}
