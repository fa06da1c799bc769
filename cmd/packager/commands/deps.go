package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/packager/internal/ui/tree"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	var (
		depth  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List installed production dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Dependencies(cmd.Context(), c.project(), depth)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			root, err := filepath.Abs(c.dir)
			if err != nil {
				root = c.dir
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.Render(filepath.Base(root), result))
			return err
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "Maximum dependency depth to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dependency result as JSON")
	return cmd
}
