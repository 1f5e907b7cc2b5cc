package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/triangler/pkg/config"
	"github.com/matzehuels/triangler/pkg/imgio"
	"github.com/matzehuels/triangler/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width      int    // canvas width in pixels
	height     int    // canvas height in pixels
	dots       uint64 // number of chaos-game iterations
	output     string // output file path
	color      string // hex color for plotted dots
	seedImage  string // path of an image to blend under the fractal
	wallpaper  bool   // set the result as desktop background
	preset     string // named preset from the config file
	configPath string // alternate config file location
	noProgress bool   // disable the progress bar
}

// newGenerateCmd creates the generate command for rendering fractal images.
//
// Parameter precedence (highest first): explicit flags, the selected preset,
// file-level config defaults, built-in defaults. A seed image replaces the
// constant color with per-pixel sampling.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Sierpiński triangle image",
		Long: `Generate renders a Sierpiński triangle by playing the chaos game and saves
it as a PNG. The triangle can be drawn in a constant color (--color) or over
a darkened grayscale copy of a seed image (--seed-image), sampling the seed's
original colors for every plotted dot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	addParamFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default \"WxH - N.png\")")
	cmd.Flags().BoolVar(&opts.wallpaper, "wallpaper", false, "set the generated image as wallpaper")

	return cmd
}

// addParamFlags registers the flags shared by generate and wallpaper.
func addParamFlags(cmd *cobra.Command, opts *generateOpts) {
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels")
	cmd.Flags().Uint64VarP(&opts.dots, "dots", "d", 0, "number of dots to draw")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "hex dot color, e.g. '#ff8800' or 'f80'")
	cmd.Flags().StringVar(&opts.seedImage, "seed-image", "", "image to blend under the fractal")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "named preset from the config file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default \"<user config dir>/triangler/triangler.toml\")")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the progress bar")
}

func runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := buildPipelineOptions(cmd, opts, logger)
	if err != nil {
		return err
	}
	popts.SetWallpaper = opts.wallpaper

	tracker := newProgress(logger)
	res, err := runPipeline(ctx, popts, opts.noProgress, logger)
	if err != nil {
		return err
	}
	tracker.done(fmt.Sprintf("Plotted %d dots", popts.Dots))

	printSuccess("Generated %dx%d image", popts.Width, popts.Height)
	printFile(res.Path)
	if res.WallpaperSet {
		printDetail("set as desktop wallpaper")
	}
	return nil
}

// paramFlags carries flag values together with whether each was set
// explicitly, so config layering can tell 0 apart from "not given".
type paramFlags struct {
	width     int
	widthSet  bool
	height    int
	heightSet bool
	dots      uint64
	dotsSet   bool
	color     string
	colorSet  bool
	seedImage string
	output    string
}

// buildPipelineOptions loads the config file and layers the command flags
// over the selected preset.
func buildPipelineOptions(cmd *cobra.Command, opts *generateOpts, logger *log.Logger) (pipeline.Options, error) {
	cfgPath := opts.configPath
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return pipeline.Options{}, err
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	logger.Debug("Loaded configuration", "path", cfgPath, "presets", len(cfg.Presets))

	flags := cmd.Flags()
	f := paramFlags{
		width:     opts.width,
		widthSet:  flags.Changed("width"),
		height:    opts.height,
		heightSet: flags.Changed("height"),
		dots:      opts.dots,
		dotsSet:   flags.Changed("dots"),
		color:     opts.color,
		colorSet:  flags.Changed("color"),
		seedImage: opts.seedImage,
		output:    opts.output,
	}

	popts, err := resolveParams(cfg, opts.preset, f)
	if err != nil {
		return pipeline.Options{}, err
	}
	popts.Logger = logger
	return popts, nil
}

// resolveParams merges explicit flag values over preset/config values.
func resolveParams(cfg config.Config, preset string, f paramFlags) (pipeline.Options, error) {
	base, err := cfg.Resolve(preset)
	if err != nil {
		return pipeline.Options{}, err
	}

	popts := pipeline.Options{
		Width:    base.Width,
		Height:   base.Height,
		Dots:     base.Dots,
		SeedPath: f.seedImage,
		Output:   f.output,
	}
	if f.widthSet {
		popts.Width = f.width
	}
	if f.heightSet {
		popts.Height = f.height
	}
	if f.dotsSet {
		popts.Dots = f.dots
	}

	// A seed image supplies per-pixel color; any color spec is ignored then.
	switch {
	case f.seedImage != "":
	case f.colorSet:
		c := f.color
		popts.Color = &c
	case base.Color != "":
		c := base.Color
		popts.Color = &c
	}

	if popts.Output == "" && cfg.OutputDir != "" {
		popts.Output = filepath.Join(cfg.OutputDir,
			imgio.DefaultFilename(popts.Width, popts.Height, popts.Dots))
	}

	return popts, nil
}

// runPipeline executes the pipeline, optionally behind a bubbletea progress
// bar fed from the plotter's observer.
func runPipeline(ctx context.Context, popts pipeline.Options, noProgress bool, logger *log.Logger) (pipeline.Result, error) {
	if noProgress {
		return pipeline.Run(ctx, popts)
	}

	prog := tea.NewProgram(NewProgressModel(popts.Dots), tea.WithOutput(os.Stderr))
	popts.Observer = func(done, total uint64) {
		prog.Send(progressMsg{done: done, total: total})
	}

	type runResult struct {
		res pipeline.Result
		err error
	}
	resCh := make(chan runResult, 1)
	go func() {
		res, err := pipeline.Run(ctx, popts)
		prog.Send(finishedMsg{})
		resCh <- runResult{res: res, err: err}
	}()

	if _, err := prog.Run(); err != nil {
		// No usable terminal; the run itself is unaffected.
		logger.Debug("Progress UI unavailable", "err", err)
	}

	r := <-resCh
	return r.res, r.err
}
