package cli

import (
	"wifidash/internal/config"

	"github.com/spf13/cobra"
)

func addConfig(topLevel *cobra.Command, o *options) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration.",
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			return config.Dump(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.AddCommand(show)
	topLevel.AddCommand(cmd)
}
