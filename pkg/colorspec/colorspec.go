// Package colorspec resolves user-supplied hex color strings into RGB
// triples.
//
// Resolution is deliberately best-effort: a malformed color is cosmetic
// input and must never abort generation. Every failure path logs a warning
// and falls back to opaque white; only the absence of a color (an expected,
// intended path) logs at info level instead.
//
// Accepted forms, with or without a leading '#':
//
//	"f00"     → (255, 0, 0)   (shorthand, each digit doubled)
//	"00ff00"  → (0, 255, 0)
package colorspec

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/triangler/pkg/canvas"
	"github.com/matzehuels/triangler/pkg/errors"
)

// Resolve turns an optional hex color string into an RGB triple.
// spec == nil means the caller provided no color at all.
// A nil logger falls back to log.Default().
func Resolve(spec *string, logger *log.Logger) canvas.RGB {
	if logger == nil {
		logger = log.Default()
	}

	if spec == nil {
		logger.Info("No color provided, using white")
		return canvas.White
	}

	rgb, err := Parse(*spec)
	if err != nil {
		logger.Warn("Falling back to white", "color", *spec, "reason", errors.UserMessage(err))
		return canvas.White
	}
	return rgb
}

// Parse parses a hex color string into an RGB triple without any fallback.
// It returns an INVALID_COLOR error describing the first problem found.
func Parse(spec string) (canvas.RGB, error) {
	if spec == "" {
		return canvas.RGB{}, errors.New(errors.ErrCodeInvalidColor, "no color provided")
	}

	s := strings.TrimPrefix(spec, "#")

	switch len(s) {
	case 3:
		s = expandShorthand(s)
	case 6:
		// already full form
	default:
		return canvas.RGB{}, errors.New(errors.ErrCodeInvalidColor,
			"invalid length %d, must be 3 or 6 hex digits", len(s))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		group := s[i*2 : i*2+2]
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			for _, r := range group {
				if !errors.IsHexDigit(r) {
					return canvas.RGB{}, errors.New(errors.ErrCodeInvalidColor,
						"illegal character %q", r)
				}
			}
			return canvas.RGB{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "unknown error")
		}
		channels[i] = uint8(v)
	}

	return canvas.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// expandShorthand doubles each digit of a 3-character form: "abc" → "aabbcc".
func expandShorthand(s string) string {
	var b strings.Builder
	b.Grow(6)
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}
