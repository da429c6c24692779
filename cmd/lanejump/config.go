package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanejump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration lanejump would play with, as YAML.

The file is looked up in this order: --config, ~/.lanejump/configs/lanejump.yaml,
./configs/lanejump.yaml, then the built-in defaults. Redirect the output to
start a custom file:

  lanejump config > ~/.lanejump/configs/lanejump.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
