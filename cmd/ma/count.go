package main

import (
	"fmt"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/references"
	"github.com/lerenn/model-analyzer/pkg/search"
	"github.com/spf13/cobra"
)

func createCountCmd() *cobra.Command {
	var threshold int

	countCmd := &cobra.Command{
		Use:   "count <results-file>",
		Short: "Count the file groups of a search report",
		Long: `Count the referencing files of an existing search report, as written by the
external search tool, and tell whether the element would be listed for review.

Examples:
  ma count C:\Results\RansackResults.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = threshold
			}

			data, err := fs.NewFS().ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", search.ErrReadResults, err)
			}

			count := references.Count(search.SplitLines(data))
			out := cli.Output(cmd)
			fmt.Fprintf(out, "%s: %d file references\n", args[0], count)
			if references.NeedsReview(count, cfg.Threshold) {
				fmt.Fprintf(out, "Below the threshold of %d: would be listed for review\n", cfg.Threshold)
			}
			return nil
		},
	}

	countCmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Minimum number of referencing files")
	return countCmd
}
