// Package observability provides hooks for metrics and progress events.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about generation runs and output stages.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library free of observability frameworks while letting
// main wire in whatever backend it wants.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Generator().OnGenerateStart(ctx, width, height, dots)
//	// ... run the chaos game ...
//	observability.Generator().OnGenerateComplete(ctx, dots, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events from the chaos-game generator.
type GeneratorHooks interface {
	// OnGenerateStart records the start of a generation run.
	OnGenerateStart(ctx context.Context, width, height int, dots uint64)

	// OnProgress records a batch of completed iterations.
	OnProgress(ctx context.Context, done, total uint64)

	// OnGenerateComplete records the end of a generation run.
	OnGenerateComplete(ctx context.Context, dots uint64, duration time.Duration, err error)
}

// OutputHooks receives events from the encode/save/wallpaper stages.
type OutputHooks interface {
	// OnEncodeComplete records a finished PNG encode.
	OnEncodeComplete(ctx context.Context, size int, duration time.Duration, err error)

	// OnSaveComplete records a finished file write.
	OnSaveComplete(ctx context.Context, path string, err error)

	// OnWallpaperSet records a wallpaper change attempt.
	OnWallpaperSet(ctx context.Context, path string, err error)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int, int, uint64)                 {}
func (NoopGeneratorHooks) OnProgress(context.Context, uint64, uint64)                        {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, uint64, time.Duration, error) {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnEncodeComplete(context.Context, int, time.Duration, error) {}
func (NoopOutputHooks) OnSaveComplete(context.Context, string, error)               {}
func (NoopOutputHooks) OnWallpaperSet(context.Context, string, error)               {}

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	outputHooks    OutputHooks    = NoopOutputHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
// This should be called once at application startup before any output stage.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	outputHooks = NoopOutputHooks{}
}
