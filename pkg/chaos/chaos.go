package chaos

import (
	"math/rand/v2"

	"github.com/matzehuels/triangler/pkg/canvas"
	"github.com/matzehuels/triangler/pkg/errors"
)

// ProgressBatch is the number of iterations between observer ticks.
const ProgressBatch = 1000

// Rand is the source of vertex choices. *math/rand/v2.Rand satisfies it, so
// tests can pass a PCG seeded with a fixed value for reproducible images.
type Rand interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
}

// Observer receives progress ticks during generation. done is the number of
// iterations completed so far, total the requested dot count. The final call
// always reports done == total.
type Observer func(done, total uint64)

// Option configures a generation run.
type Option func(*plotter)

type plotter struct {
	rng      Rand
	src      ColorSource
	seed     *canvas.Canvas
	observer Observer
}

// WithRand sets the random source for vertex selection.
func WithRand(r Rand) Option {
	return func(p *plotter) {
		if r != nil {
			p.rng = r
		}
	}
}

// WithColorSource sets the color policy for plotted pixels.
// The default is constant opaque white.
func WithColorSource(s ColorSource) Option {
	return func(p *plotter) {
		if s != nil {
			p.src = s
		}
	}
}

// WithSeed draws onto an existing canvas (typically built with
// canvas.FromImage) instead of a blank one. The seed's dimensions must match
// the generation dimensions.
func WithSeed(c *canvas.Canvas) Option {
	return func(p *plotter) { p.seed = c }
}

// WithObserver registers a progress callback, invoked every ProgressBatch
// iterations and once more after the loop completes.
func WithObserver(o Observer) Option {
	return func(p *plotter) { p.observer = o }
}

// Generate runs the chaos game and returns the populated canvas.
//
// The three vertices are plotted first, then dots iterations of the random
// walk. With dots == 0 exactly the three corner pixels are set. Every write
// stays in bounds: the cursor starts in bounds and each update is an integer
// midpoint of two in-bounds points.
//
// The only failure modes are invalid dimensions and a seed canvas whose size
// does not match; the walk itself cannot fail.
func Generate(width, height int, dots uint64, opts ...Option) (*canvas.Canvas, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	p := plotter{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		src: Constant(canvas.White),
	}
	for _, opt := range opts {
		opt(&p)
	}

	c := p.seed
	if c == nil {
		c = canvas.New(width, height)
	} else if c.Width() != width || c.Height() != height {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"seed canvas is %dx%d, want %dx%d", c.Width(), c.Height(), width, height)
	}

	vertices := canvas.Vertices(width, height)
	for _, v := range vertices {
		c.Set(v.X, v.Y, p.src.ColorAt(v.X, v.Y))
	}

	cursor := canvas.Point{X: width / 2, Y: height/2 - 1}
	if cursor.Y < 0 {
		cursor.Y = 0 // single-row canvases would otherwise start above the frame
	}

	for i := uint64(1); i <= dots; i++ {
		n := p.rng.IntN(3)
		c.Set(cursor.X, cursor.Y, p.src.ColorAt(cursor.X, cursor.Y))
		cursor.X = (cursor.X + vertices[n].X) / 2
		cursor.Y = (cursor.Y + vertices[n].Y) / 2
		if p.observer != nil && i%ProgressBatch == 0 {
			p.observer(i, dots)
		}
	}
	if p.observer != nil {
		p.observer(dots, dots)
	}

	return c, nil
}
