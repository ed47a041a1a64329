package main

import (
	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "yaml or toml")

	return cmd
}
