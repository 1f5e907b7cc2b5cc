package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logGeneratorHooks routes generator events to the CLI logger at debug level.
// Per-batch progress is intentionally not logged; the progress bar owns it.
type logGeneratorHooks struct {
	logger *log.Logger
}

func newLogGeneratorHooks(l *log.Logger) *logGeneratorHooks {
	return &logGeneratorHooks{logger: l}
}

func (h *logGeneratorHooks) OnGenerateStart(_ context.Context, width, height int, dots uint64) {
	h.logger.Debug("Generation started", "width", width, "height", height, "dots", dots)
}

func (h *logGeneratorHooks) OnProgress(context.Context, uint64, uint64) {}

func (h *logGeneratorHooks) OnGenerateComplete(_ context.Context, dots uint64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Generation failed", "err", err)
		return
	}
	h.logger.Debug("Generation finished", "dots", dots, "elapsed", d.Round(time.Millisecond))
}

// logOutputHooks routes encode/save/wallpaper events to the CLI logger.
type logOutputHooks struct {
	logger *log.Logger
}

func newLogOutputHooks(l *log.Logger) *logOutputHooks {
	return &logOutputHooks{logger: l}
}

func (h *logOutputHooks) OnEncodeComplete(_ context.Context, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Encode failed", "err", err)
		return
	}
	h.logger.Debug("Encoded PNG", "bytes", size, "elapsed", d.Round(time.Millisecond))
}

func (h *logOutputHooks) OnSaveComplete(_ context.Context, path string, err error) {
	if err != nil {
		h.logger.Debug("Save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("Saved image", "path", path)
}

func (h *logOutputHooks) OnWallpaperSet(_ context.Context, path string, err error) {
	if err != nil {
		h.logger.Debug("Wallpaper set failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("Wallpaper set", "path", path)
}
