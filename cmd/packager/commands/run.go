package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/packager/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [scripts...]",
		Short: "Run package scripts in order",
		Long:  "Run package scripts in order, stopping at the first failure. Without arguments the scripts listed in the configuration file run.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.RunScripts(cmd.Context(), c.project(), args)
			if errors.Is(err, domain.ErrNoScriptsSpecified) {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return err
		},
	}
}
