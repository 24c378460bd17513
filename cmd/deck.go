package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the standard 52-card deck",
	Long:  `Commands for listing the standard deck and the hands it can produce.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card in the standard deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deck.Standard()
		cards := d.Cards()
		out := cmd.OutOrStdout()

		for _, s := range card.Suits {
			var row []string
			for _, c := range cards {
				if c.Suit() == s {
					row = append(row, cardLabel(c))
				}
			}
			fmt.Fprintf(out, "%-9s %s\n", s, strings.Join(row, " "))
		}
		fmt.Fprintf(out, "%d cards\n", d.Len())
		return nil
	},
}

// deckCensusCmd represents the deck census command
var deckCensusCmd = &cobra.Command{
	Use:   "census",
	Short: "Count how many five-card hands fall in each rank",
	Long: `Census classifies every distinct five-card hand that can be dealt from a
standard deck and prints the count and probability of each rank.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		d := deck.Standard()
		logger.Debug("enumerating hands", "cards", d.Len())
		counts := d.Census()

		total := 0
		for _, n := range counts {
			total += n
		}
		logger.Debug("census complete", "hands", total, "duration", time.Since(start))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tHANDS\tPROBABILITY")
		for _, r := range strongestFirst() {
			fmt.Fprintf(w, "%s\t%d\t%.6f%%\n", r, counts[r], 100*float64(counts[r])/float64(total))
		}
		fmt.Fprintf(w, "Total\t%d\t\n", total)
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckCensusCmd)
}
