package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/lerenn/model-analyzer/pkg/analyzer"
	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/spf13/cobra"
)

type runFlags struct {
	output       string
	threshold    int
	backend      string
	tool         string
	resultsFile  string
	timeout      time.Duration
	skipSuffixes []string
	ignoreCase   bool
}

// apply overrides cfg with the flags set on the command line.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.OutputFile = f.output
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("backend") {
		cfg.Search.Backend = f.backend
	}
	if changed("tool") {
		cfg.Search.ToolPath = f.tool
	}
	if changed("results-file") {
		cfg.Search.ResultsFile = f.resultsFile
	}
	if changed("timeout") {
		cfg.Search.Timeout = f.timeout
	}
	if changed("skip-suffix") {
		cfg.SkipSuffixes = f.skipSuffixes
	}
	if changed("ignore-case") {
		cfg.Search.IgnoreCase = f.ignoreCase
	}
}

func createRunCmd() *cobra.Command {
	var flags runFlags

	runCmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Analyze the references of every model element",
		Long: `Analyze every XML document under root (default: root_dir from the configuration).

Each element name is searched in the whole tree. Elements found in fewer files than
the threshold are listed for review, and every search report is written to the
output file.

Examples:
  ma run K:\AosService\PackagesLocalDirectory\rsmGCX
  ma run ./model --backend external --tool AgentRansack.exe
  ma run ./model --skip-suffix _Extension --skip-suffix .GCX --threshold 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.RootDir = args[0]
			}
			flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			a, err := cli.NewAnalyzer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			rc, runErr := a.Run(ctx)
			interrupted := errors.Is(runErr, context.Canceled)
			if runErr != nil && !interrupted {
				return runErr
			}

			if err := a.Save(cfg.OutputFile, rc); err != nil {
				return fmt.Errorf("failed to write references: %w", err)
			}

			out := cli.Output(cmd)
			report.PrintReview(out, rc.Review)
			printSummary(out, rc, cfg.OutputFile, interrupted)
			return nil
		},
	}

	runCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Reference dump file (.json, .txt, .yaml)")
	runCmd.Flags().IntVarP(&flags.threshold, "threshold", "t", 0, "Minimum number of referencing files")
	runCmd.Flags().StringVarP(&flags.backend, "backend", "b", "", "Search backend (builtin or external)")
	runCmd.Flags().StringVar(&flags.tool, "tool", "", "External search executable")
	runCmd.Flags().StringVar(&flags.resultsFile, "results-file", "", "File the external tool writes its report to")
	runCmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Per-search timeout (0 disables it)")
	runCmd.Flags().StringArrayVar(&flags.skipSuffixes, "skip-suffix", nil,
		"Element name suffix to skip (repeatable, replaces the configured set)")
	runCmd.Flags().BoolVar(&flags.ignoreCase, "ignore-case", false, "Match names case-insensitively (builtin backend)")

	return runCmd
}

func printSummary(out io.Writer, rc *analyzer.RunContext, outputFile string, interrupted bool) {
	fmt.Fprintln(out)
	if interrupted {
		fmt.Fprintln(out, "Analysis interrupted, results are partial.")
	}
	s := rc.Stats
	fmt.Fprintf(out, "%d documents, %d searched, %d skipped, %d without name, %d unparsable, %d failed\n",
		s.Files, s.Searched, s.Skipped, s.Absent, s.ParseErrors, s.Failed)
	fmt.Fprintf(out, "%d elements to review, references written to %s\n", rc.Review.Len(), outputFile)
}
