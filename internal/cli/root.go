package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/visnet/pkg/buildinfo"
	visneterrors "github.com/matzehuels/visnet/pkg/errors"
)

// configPath is the --config override, empty for the default location.
var configPath string

// Execute runs the visnet CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render,
// serve, dot, cache), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Visnet renders graphs as interactive HTML pages",
		Long:          `Visnet turns graph files into interactive network visualizations. Layout and physics run in the browser via the vis-network library; visnet builds the data, the options, and the page around them.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/visnet/config.toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%s", visneterrors.UserMessage(err))
	}
	return err
}
