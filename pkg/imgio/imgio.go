// Package imgio provides image decoding and encoding for the triangler CLI.
//
// # Overview
//
// The generation core works with in-memory pixel buffers only; this package
// is the boundary that moves them to and from disk:
//
//   - [Load] / [Decode] read a seed image (PNG or JPEG)
//   - [SavePNG] / [EncodePNG] write a finished canvas as PNG
//   - [DefaultFilename] derives the historical "WxH - N.png" output name
//
// # Errors
//
// A seed image that cannot be opened or decoded is a fatal input error: it is
// reported with the SEED_UNREADABLE code and never substituted with a default
// image. Encode and save failures carry ENCODE_FAILED and SAVE_FAILED.
package imgio

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register decoders for the seed formats we accept.
	_ "image/jpeg"
	"image/png"

	"github.com/matzehuels/triangler/pkg/errors"
)

// Decode reads a seed image from r.
// The format is sniffed from the stream; PNG and JPEG are supported.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSeedUnreadable, err, "decode seed image")
	}
	return img, nil
}

// Load reads and decodes the seed image at path.
//
// Both open and decode failures surface as SEED_UNREADABLE; the caller
// decides whether to abort, the core never falls back to a default image.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSeedUnreadable, err, "open %s", path)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSeedUnreadable, err, "decode %s", path)
	}
	return img, nil
}

// EncodePNG encodes img as PNG and writes it to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode png")
	}
	return nil
}

// SavePNG writes img as a PNG file at path, creating or truncating it.
func SavePNG(path string, img image.Image) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "create %s", path)
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "close %s", path)
	}
	return nil
}

// Save writes already-encoded image data to path, creating or truncating it.
func Save(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", path)
	}
	return nil
}

// DefaultFilename returns the output name used when none is given,
// e.g. "1920x1080 - 500000.png".
func DefaultFilename(width, height int, dots uint64) string {
	return fmt.Sprintf("%dx%d - %d.png", width, height, dots)
}
