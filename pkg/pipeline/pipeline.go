// Package pipeline orchestrates a full generation run: seed loading, color
// resolution, the chaos-game walk, PNG encoding, saving, and the optional
// wallpaper step.
//
// The pipeline is the seam between the CLI and the core packages. It owns
// stage ordering and failure propagation, emits observability hook events
// around each stage, and leaves presentation (progress bars, styled output)
// to the caller via the Observer callback and the injected logger.
package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangler/pkg/canvas"
	"github.com/matzehuels/triangler/pkg/chaos"
	"github.com/matzehuels/triangler/pkg/colorspec"
	"github.com/matzehuels/triangler/pkg/errors"
	"github.com/matzehuels/triangler/pkg/imgio"
	"github.com/matzehuels/triangler/pkg/observability"
	"github.com/matzehuels/triangler/pkg/wallpaper"
)

// Options configures a pipeline run.
type Options struct {
	Width  int
	Height int
	Dots   uint64

	// Color is the optional hex color spec; nil means none was provided.
	// Ignored when SeedPath is set (the seed supplies per-pixel color).
	Color *string

	// SeedPath optionally points at an image to blend under the fractal.
	SeedPath string

	// Output is the target file path; empty derives "WxH - N.png".
	Output string

	// SetWallpaper installs the saved image as the desktop background.
	SetWallpaper bool

	// Rand overrides the random source (used by tests for reproducibility).
	Rand chaos.Rand

	// Observer receives progress ticks in addition to the observability hooks.
	Observer chaos.Observer

	// Logger receives stage and warning logs; nil falls back to log.Default().
	Logger *log.Logger
}

// Result describes a completed run.
type Result struct {
	Path         string // where the image was saved
	EncodedBytes int    // size of the PNG payload
	WallpaperSet bool
}

// Run executes the pipeline and returns the saved image's location.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if err := errors.ValidateDimensions(opts.Width, opts.Height); err != nil {
		return Result{}, err
	}

	genOpts, err := buildGeneration(ctx, opts, logger)
	if err != nil {
		return Result{}, err
	}

	logger.Info("Generating Sierpiński triangle",
		"width", opts.Width, "height", opts.Height, "dots", opts.Dots)

	observability.Generator().OnGenerateStart(ctx, opts.Width, opts.Height, opts.Dots)
	start := time.Now()
	c, err := chaos.Generate(opts.Width, opts.Height, opts.Dots, genOpts...)
	observability.Generator().OnGenerateComplete(ctx, opts.Dots, time.Since(start), err)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	logger.Debug("Encoding PNG")
	var buf bytes.Buffer
	encStart := time.Now()
	err = imgio.EncodePNG(&buf, c.Image())
	observability.Output().OnEncodeComplete(ctx, buf.Len(), time.Since(encStart), err)
	if err != nil {
		return Result{}, err
	}

	path := opts.Output
	if path == "" {
		path = imgio.DefaultFilename(opts.Width, opts.Height, opts.Dots)
	}

	logger.Info("Saving image", "path", path)
	err = imgio.Save(path, buf.Bytes())
	observability.Output().OnSaveComplete(ctx, path, err)
	if err != nil {
		return Result{}, err
	}

	result := Result{Path: path, EncodedBytes: buf.Len()}

	if opts.SetWallpaper {
		logger.Info("Setting image as wallpaper")
		err = wallpaper.Set(ctx, path)
		observability.Output().OnWallpaperSet(ctx, path, err)
		if err != nil {
			return result, err
		}
		result.WallpaperSet = true
	}

	return result, nil
}

// buildGeneration translates Options into chaos.Generate options: the color
// source (constant or image-sampled), the optional seed canvas, the random
// source, and the observer bridge that fans ticks out to hooks.
func buildGeneration(ctx context.Context, opts Options, logger *log.Logger) ([]chaos.Option, error) {
	var genOpts []chaos.Option

	if opts.SeedPath != "" {
		img, err := imgio.Load(opts.SeedPath)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		if b.Dx() != opts.Width || b.Dy() != opts.Height {
			logger.Debug("Resizing seed image",
				"from", b.Size().String(), "width", opts.Width, "height", opts.Height)
			img = imaging.Resize(img, opts.Width, opts.Height, imaging.Lanczos)
		}

		// The canvas background is the darkened grayscale seed; the dots
		// sample the original colors so they stay visible on top of it.
		genOpts = append(genOpts,
			chaos.WithSeed(canvas.FromImage(img, opts.Width, opts.Height)),
			chaos.WithColorSource(chaos.NewImageSampled(img)),
		)
	} else {
		rgb := colorspec.Resolve(opts.Color, logger)
		genOpts = append(genOpts, chaos.WithColorSource(chaos.Constant(rgb)))
	}

	if opts.Rand != nil {
		genOpts = append(genOpts, chaos.WithRand(opts.Rand))
	}

	observer := func(done, total uint64) {
		observability.Generator().OnProgress(ctx, done, total)
		if opts.Observer != nil {
			opts.Observer(done, total)
		}
	}
	genOpts = append(genOpts, chaos.WithObserver(observer))

	return genOpts, nil
}
