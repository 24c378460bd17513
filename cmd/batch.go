package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handrank/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Classify one hand per line from a file or stdin",
	Long: `Batch reads one hand per line and classifies every line in parallel.
Blank lines and lines starting with '#' are ignored. Read from stdin when no
file is given or the file is '-'.

Invalid lines are reported with their line number and do not stop the batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening hands file: %w", err)
			}
			defer file.Close()
			in = file
		}

		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			n, err := cmd.Flags().GetInt("workers")
			if err != nil {
				return err
			}
			if n < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", n)
			}
			workers = n
		}

		results, err := batch.NewClassifier(logger, workers).Classify(cmd.Context(), in)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range results.Entries {
			if e.Err != nil {
				fmt.Fprintf(out, "line %d: error: %v\n", e.Line, e.Err)
				continue
			}
			fmt.Fprintf(out, "line %d: %s: %s\n", e.Line, e.Hand, rankLabel(e.Rank))
		}

		summary := results.Summary()
		if len(summary) > 0 {
			fmt.Fprintln(out, "\nSummary:")
			for _, r := range strongestFirst() {
				if n := summary[r]; n > 0 {
					fmt.Fprintf(out, "%-16s %d\n", r, n)
				}
			}
		}

		if failed := len(results.Failed()); failed > 0 {
			return fmt.Errorf("%d of %d hands could not be classified", failed, len(results.Entries))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("workers", "w", 0, "Number of hands classified in parallel (default from config)")
}
