package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packager/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	var opts app.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the project dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context(), c.project(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.IgnoreScripts, "ignore-scripts", false, "Do not run lifecycle scripts")
	return cmd
}

func (c *CLI) newPruneCmd() *cobra.Command {
	var opts app.InstallOptions

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove dependencies the project no longer declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Prune(cmd.Context(), c.project(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.IgnoreScripts, "ignore-scripts", false, "Do not run lifecycle scripts")
	return cmd
}
