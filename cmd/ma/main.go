// Package main provides the command-line interface of the model analyzer.
package main

import (
	"log"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/lerenn/model-analyzer/pkg/prompt"
	"github.com/spf13/cobra"
)

func newRootCmd(prompter prompt.Prompter) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ma",
		Short: "Model Analyzer - find unreferenced model elements",
		Long: `Scan a tree of XML model-definition documents, search the tree for every ` +
			`element name and list the elements referenced by too few files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createRunCmd(),
		createCountCmd(),
		createReviewCmd(),
		createInitCmd(prompter),
		createConfigCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(prompt.NewPrompt()).Execute(); err != nil {
		log.Fatal(err)
	}
}
