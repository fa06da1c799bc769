// Package commands implements the CLI commands for the packager tool.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/packager/internal/app"
	"go.trai.ch/packager/internal/build"
	"go.trai.ch/packager/internal/core/domain"
)

// CLI represents the command line interface for packager.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir        string
	configFile string
	jsonLogs   bool
	onJSONLogs func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Dependencies(ctx context.Context, project app.Project, depth int) (domain.DependencyResult, error)
	Install(ctx context.Context, project app.Project, opts app.InstallOptions) error
	Prune(ctx context.Context, project app.Project, opts app.InstallOptions) error
	RunScripts(ctx context.Context, project app.Project, scriptNames []string) error
	RebaseLockfile(opts app.RebaseOptions) error
	Info() app.Info
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "packager",
		Short:         "Drive pnpm for packaging JavaScript projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.dir, "dir", "C", ".", "Project directory")
	flags.StringVarP(&c.configFile, "config", "c", domain.DefaultConfigFilename, "Configuration file, relative to the project directory")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.onJSONLogs != nil {
			c.onJSONLogs(c.jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newRebaseCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetJSONLogsHook registers fn to receive the value of the json-logs flag before a command runs.
func (c *CLI) SetJSONLogsHook(fn func(bool)) {
	c.onJSONLogs = fn
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) project() app.Project {
	return app.Project{Dir: c.dir, ConfigFile: c.configFile}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
