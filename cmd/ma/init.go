package main

import (
	"fmt"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/prompt"
	"github.com/lerenn/model-analyzer/pkg/search"
	"github.com/spf13/cobra"
)

type initFlags struct {
	force   bool
	rootDir string
	backend string
	tool    string
}

func createInitCmd(prompter prompt.Prompter) *cobra.Command {
	var flags initFlags

	initCmd := &cobra.Command{
		Use:   "init [--force] [--root-dir <path>] [--backend <name>] [--tool <path>]",
		Short: "Initialize ma configuration",
		Long: `Write the default configuration, asking for the model root and the search backend.

Flags:
  --force      Overwrite an existing configuration and skip every prompt
  --root-dir   Set the model root directory (skips the prompt)
  --backend    Set the search backend, builtin or external (skips the prompt)
  --tool       Set the external search executable (skips the prompt)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()
			path := manager.GetConfigPath()
			out := cli.Output(cmd)

			exists, err := fs.NewFS().Exists(path)
			if err != nil {
				return err
			}
			if exists && !flags.force {
				overwrite, err := prompter.PromptForConfirmation(
					fmt.Sprintf("Configuration %s already exists. Overwrite it?", path), false)
				if err != nil {
					return err
				}
				if !overwrite {
					fmt.Fprintln(out, "Initialization cancelled.")
					return nil
				}
			}

			cfg, err := initConfig(cmd, prompter, manager.DefaultConfig(), flags)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := manager.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintf(out, "Configuration written to %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing configuration and skip every prompt")
	initCmd.Flags().StringVar(&flags.rootDir, "root-dir", "", "Model root directory")
	initCmd.Flags().StringVar(&flags.backend, "backend", "", "Search backend (builtin or external)")
	initCmd.Flags().StringVar(&flags.tool, "tool", "", "External search executable")

	return initCmd
}

// initConfig fills cfg from the flags, prompting for what is missing unless --force is set.
func initConfig(cmd *cobra.Command, prompter prompt.Prompter, cfg config.Config, flags initFlags) (config.Config, error) {
	changed := cmd.Flags().Changed
	interactive := !flags.force

	switch {
	case changed("root-dir"):
		cfg.RootDir = flags.rootDir
	case interactive:
		rootDir, err := prompter.PromptForValue("Model root directory", cfg.RootDir)
		if err != nil {
			return cfg, err
		}
		cfg.RootDir = rootDir
	}

	switch {
	case changed("backend"):
		cfg.Search.Backend = flags.backend
	case interactive:
		choice, err := prompter.PromptSelect("Choose a search backend:", []prompt.Choice{
			{Value: search.BackendBuiltin, Description: "scan the files in-process"},
			{Value: search.BackendExternal, Description: "run a desktop search tool"},
		})
		if err != nil {
			return cfg, err
		}
		cfg.Search.Backend = choice.Value
	}

	if cfg.Search.Backend != search.BackendExternal {
		return cfg, nil
	}

	switch {
	case changed("tool"):
		cfg.Search.ToolPath = flags.tool
	case interactive:
		tool, err := prompter.PromptForValue("Search tool executable", cfg.Search.ToolPath)
		if err != nil {
			return cfg, err
		}
		cfg.Search.ToolPath = tool
	}

	return cfg, nil
}
