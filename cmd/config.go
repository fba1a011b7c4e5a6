package cmd

import (
	"fmt"

	"pairctl/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration pairctl would run with, as YAML.

Defaults are layered with the user config file and the project config file
(.pairctl/config.yaml in the working directory). With --config only that file
is layered over the defaults.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where the user config file is looked up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.UserConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	var (
		cfg config.PairctlConfig
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadConfigFrom(flags.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load pairctl configuration: %w", err)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
