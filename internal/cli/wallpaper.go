package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/triangler/pkg/imgio"
	"github.com/matzehuels/triangler/pkg/wallpaper"
)

// newWallpaperCmd creates the wallpaper command. It renders a fractal and
// installs it as the desktop background in one step, defaulting the save
// location to the system temp directory since the wallpaper package keeps
// its own staged copy.
func newWallpaperCmd() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Generate a fractal and set it as the desktop wallpaper",
		Long: `Wallpaper renders a Sierpiński triangle and sets it as the desktop
background. On Linux, GNOME-family and KDE desktops are supported; macOS and
Windows use their native mechanisms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWallpaper(cmd, &opts)
		},
	}

	addParamFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default under the temp dir)")

	return cmd
}

func runWallpaper(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := buildPipelineOptions(cmd, opts, logger)
	if err != nil {
		return err
	}
	if popts.Output == "" {
		popts.Output = filepath.Join(os.TempDir(),
			imgio.DefaultFilename(popts.Width, popts.Height, popts.Dots))
	}

	res, err := runPipeline(ctx, popts, opts.noProgress, logger)
	if err != nil {
		return err
	}

	sp := newSpinnerWithContext(ctx, "Setting wallpaper")
	sp.Start()
	if err := wallpaper.Set(ctx, res.Path); err != nil {
		sp.StopWithError("Failed to set wallpaper")
		return err
	}
	sp.StopWithSuccess("Wallpaper set")
	printFile(res.Path)
	return nil
}
