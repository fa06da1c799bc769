package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/packager/internal/app"
)

func (c *CLI) newRebaseCmd() *cobra.Command {
	var opts app.RebaseOptions

	cmd := &cobra.Command{
		Use:   "rebase",
		Short: "Copy the lockfile to another directory, rebasing its file references",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts.ConfigFile = c.configFile
			return c.app.RebaseLockfile(opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Directory holding the lockfile")
	cmd.Flags().StringVar(&opts.To, "to", "", "Directory to write the rebased lockfile to")
	cmd.Flags().StringVar(&opts.Root, "root", "", "Path from the target directory back to the project")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
