package pipeline

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/triangler/pkg/canvas"
	"github.com/matzehuels/triangler/pkg/errors"
	"github.com/matzehuels/triangler/pkg/imgio"
	"github.com/matzehuels/triangler/pkg/observability"
)

type stageRecorder struct {
	mu        sync.Mutex
	starts    int
	progress  int
	completes int
	encodes   int
	saves     []string
}

func (r *stageRecorder) OnGenerateStart(context.Context, int, int, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
}

func (r *stageRecorder) OnProgress(context.Context, uint64, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress++
}

func (r *stageRecorder) OnGenerateComplete(context.Context, uint64, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completes++
}

func (r *stageRecorder) OnEncodeComplete(context.Context, int, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encodes++
}

func (r *stageRecorder) OnSaveComplete(_ context.Context, path string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, path)
}

func (r *stageRecorder) OnWallpaperSet(context.Context, string, error) {}

func TestRunSavesImage(t *testing.T) {
	t.Cleanup(observability.Reset)
	rec := &stageRecorder{}
	observability.SetGeneratorHooks(rec)
	observability.SetOutputHooks(rec)

	out := filepath.Join(t.TempDir(), "fractal.png")
	res, err := Run(context.Background(), Options{
		Width:  64,
		Height: 64,
		Dots:   3000,
		Output: out,
		Rand:   rand.New(rand.NewPCG(5, 5)),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Path != out {
		t.Errorf("result path = %q, want %q", res.Path, out)
	}
	if res.EncodedBytes <= 0 {
		t.Error("encoded size should be positive")
	}
	if res.WallpaperSet {
		t.Error("wallpaper must not be set unless requested")
	}

	img, err := imgio.Load(out)
	if err != nil {
		t.Fatalf("saved image unreadable: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("saved image is %v, want 64x64", img.Bounds())
	}

	if rec.starts != 1 || rec.completes != 1 || rec.encodes != 1 {
		t.Errorf("hook counts = %+v, want one start/complete/encode", rec)
	}
	// 3000 dots: ticks at 1000, 2000, 3000 plus the final flush.
	if rec.progress != 4 {
		t.Errorf("progress ticks = %d, want 4", rec.progress)
	}
	if len(rec.saves) != 1 || rec.saves[0] != out {
		t.Errorf("save hook paths = %v, want [%s]", rec.saves, out)
	}
}

func TestRunDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	res, err := Run(context.Background(), Options{Width: 10, Height: 10, Dots: 0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Path != "10x10 - 0.png" {
		t.Errorf("path = %q, want %q", res.Path, "10x10 - 0.png")
	}
	if _, err := os.Stat(filepath.Join(dir, res.Path)); err != nil {
		t.Errorf("default-named file not written: %v", err)
	}
}

func TestRunInvalidDimensions(t *testing.T) {
	_, err := Run(context.Background(), Options{Width: 0, Height: 10, Dots: 1})
	if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDimensions)
	}
}

func TestRunMissingSeedIsFatal(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Width:    10,
		Height:   10,
		Dots:     1,
		SeedPath: filepath.Join(t.TempDir(), "missing.png"),
	})
	if !errors.Is(err, errors.ErrCodeSeedUnreadable) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeSeedUnreadable)
	}
}

func TestRunSeedModeInitializesBackground(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.png")

	// Uniform mid-gray seed: the background must come out 50 units darker.
	seed := canvas.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			seed.Set(x, y, canvas.RGB{R: 200, G: 200, B: 200})
		}
	}
	if err := imgio.SavePNG(seedPath, seed.Image()); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.png")
	if _, err := Run(context.Background(), Options{
		Width:    8,
		Height:   8,
		Dots:     0,
		SeedPath: seedPath,
		Output:   out,
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	img, err := imgio.Load(out)
	if err != nil {
		t.Fatal(err)
	}

	// With zero dots only the three corners sample the original seed color;
	// check a non-corner pixel for the darkened background.
	r, g, b, _ := img.At(4, 4).RGBA()
	if r>>8 != 150 || g>>8 != 150 || b>>8 != 150 {
		t.Errorf("background pixel = (%d, %d, %d), want (150, 150, 150)", r>>8, g>>8, b>>8)
	}
}

func TestRunColorResolutionFallback(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	bad := "zzz"

	if _, err := Run(context.Background(), Options{
		Width:  20,
		Height: 20,
		Dots:   0,
		Color:  &bad,
		Output: out,
	}); err != nil {
		t.Fatalf("Run must not fail on a malformed color: %v", err)
	}

	img, err := imgio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	// Corner vertex for 20x20 sits at (2, 18); fallback color is white.
	r, g, b, _ := img.At(2, 18).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("corner = (%d, %d, %d), want white fallback", r>>8, g>>8, b>>8)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Width: 10, Height: 10, Dots: 0, Output: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Error("Run should fail when the context is already cancelled")
	}
}

func TestRunCustomColorApplied(t *testing.T) {
	out := filepath.Join(t.TempDir(), "red.png")
	red := "#f00"

	if _, err := Run(context.Background(), Options{
		Width:  20,
		Height: 20,
		Dots:   0,
		Color:  &red,
		Output: out,
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	img, err := imgio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(2, 18).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("corner = (%d, %d, %d), want (255, 0, 0)", r>>8, g>>8, b>>8)
	}
}
