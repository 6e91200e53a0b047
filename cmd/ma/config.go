package main

import (
	"fmt"

	"github.com/lerenn/model-analyzer/cmd/ma/internal/cli"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file, the .env file and
the MA_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}

			out := cli.Output(cmd)
			fmt.Fprintf(out, "# %s\n", cli.GetConfigPath())
			_, err = out.Write(data)
			return err
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cli.Output(cmd), cli.GetConfigPath())
		},
	}

	configCmd.AddCommand(showCmd, pathCmd)
	return configCmd
}
