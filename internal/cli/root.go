package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/triangler/pkg/buildinfo"
	"github.com/matzehuels/triangler/pkg/observability"
)

// Execute runs the triangler CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// wallpaper, completion), configures logging based on the --verbose flag,
// and executes the command tree.
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
		Use:          "triangler",
		Short:        "Triangler renders Sierpiński triangles with the chaos game",
		Long:         `Triangler is a CLI tool that renders Sierpiński triangle images by playing the chaos game: repeatedly plotting the midpoint between a walking point and a random triangle corner. Images can be seeded from a photo and installed as the desktop wallpaper.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			observability.SetGeneratorHooks(newLogGeneratorHooks(logger))
			observability.SetOutputHooks(newLogOutputHooks(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newWallpaperCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
