// Package canvas provides the mutable RGB pixel buffer the chaos game draws
// into, together with the fixed vertex geometry derived from its dimensions.
//
// A Canvas stores pixels as packed RGB triples (3 bytes per pixel, row-major),
// matching the wire shape of the PNG encoder input. It can start blank or be
// seeded from an existing image, in which case the seed is resized to the
// canvas dimensions, converted to grayscale, and darkened so plotted dots stay
// visible on top of it.
//
// # Geometry
//
// Vertices computes the three triangle corners from (width, height) alone:
//
//	bottom-left:  (w/10,     h - h/10)
//	bottom-right: (w - w/10, h - h/10)
//	top:          (w/2,      h/10)
//
// The computation is pure; calling it repeatedly with the same dimensions
// yields identical points. Degenerate triangles (corners collapsing on very
// small canvases) are allowed and not validated against.
package canvas
