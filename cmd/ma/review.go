package main

import (
	"fmt"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/spf13/cobra"
)

func createReviewCmd() *cobra.Command {
	var threshold int

	reviewCmd := &cobra.Command{
		Use:   "review [dump-file]",
		Short: "Print the review list of a previous run",
		Long: `Reload a reference dump written by 'ma run' and print its review list
without searching again (default: output_file from the configuration).

Examples:
  ma review
  ma review model-analysis.json --threshold 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.OutputFile = args[0]
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = threshold
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			a, err := cli.NewAnalyzer(cfg)
			if err != nil {
				return err
			}

			rc, err := a.Load(cfg.OutputFile)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", cfg.OutputFile, err)
			}

			out := cli.Output(cmd)
			report.PrintReview(out, rc.Review)
			fmt.Fprintf(out, "\n%d elements, %d to review\n", len(rc.References), rc.Review.Len())
			return nil
		},
	}

	reviewCmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Minimum number of referencing files")
	return reviewCmd
}
