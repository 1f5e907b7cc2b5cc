// Package pkg provides the core libraries for Triangler fractal generation.
//
// # Overview
//
// Triangler renders Sierpiński triangles by playing the chaos game: a point
// walks toward randomly chosen triangle corners, plotting the midpoint at
// every step. The pkg directory is organized into these areas:
//
//  1. [canvas] - Pixel buffer, triangle geometry, and seed-image preparation
//  2. [chaos] - The chaos-game plotter and its color sources
//  3. [colorspec] - Hex color parsing with logged fallback to white
//  4. [imgio] - Image decoding, PNG encoding, and file output
//  5. [wallpaper] - Desktop background installation per platform
//  6. [config] - TOML configuration and named presets
//  7. [pipeline] - Orchestration (generate → encode → save → wallpaper)
//
// # Architecture
//
// The typical data flow through Triangler:
//
//	Config/Flags (+ optional seed image)
//	         ↓
//	chaos.Generate (plots dots onto a canvas)
//	         ↓
//	imgio.EncodePNG → imgio.Save
//	         ↓
//	wallpaper.Set (optional)
//
// Supporting packages: [errors] defines coded errors shared across the
// module, [observability] exposes hook interfaces for instrumentation, and
// [buildinfo] carries version metadata injected at build time.
package pkg
