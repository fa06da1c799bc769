package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the packager capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := c.app.Info()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"lockfile:          %s\ncopied sections:   %s\nmust copy modules: %t\n",
				info.LockfileName,
				strings.Join(info.CopyPackageSectionNames, ", "),
				info.MustCopyModules,
			)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the capabilities as JSON")
	return cmd
}
