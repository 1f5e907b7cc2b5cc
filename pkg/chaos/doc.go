// Package chaos implements the chaos-game plotter that renders a Sierpiński
// triangle into a canvas.
//
// The algorithm walks a cursor starting near the canvas center: each
// iteration picks one of the three triangle vertices uniformly at random,
// plots the cursor's current pixel, and moves the cursor to the integer
// midpoint between itself and the chosen vertex. Integer (floor) division is
// deliberate; the accumulated discretization error is what gives the fractal
// its texture at low dot counts, and floating-point midpoints would produce a
// materially different image.
//
// Randomness and progress reporting are injected via options rather than
// taken from globals, so tests can substitute a seeded source and callers can
// route ticks to any presentation layer:
//
//	img, err := chaos.Generate(1920, 1080, 500_000,
//	    chaos.WithColorSource(chaos.Constant(canvas.RGB{R: 255})),
//	    chaos.WithObserver(func(done, total uint64) { bar.Set(done) }),
//	)
package chaos
