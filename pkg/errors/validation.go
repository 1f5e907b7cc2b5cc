package errors

import (
	"strings"
	"unicode"
)

// maxDimension caps canvas dimensions to keep pixel buffers allocatable.
// 32768x32768 at 3 bytes/pixel is already a 3 GiB buffer.
const maxDimension = 1 << 15

// ValidateDimensions validates a canvas width and height.
// Both must be strictly positive; zero-area canvases have no vertex geometry.
func ValidateDimensions(width, height int) error {
	if width <= 0 {
		return New(ErrCodeInvalidDimensions, "width must be positive, got %d", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidDimensions, "height must be positive, got %d", height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d), got %dx%d", maxDimension, width, height)
	}
	return nil
}

// ValidateOutputPath validates a file path used for saving images.
// It rejects empty paths, control characters, and null bytes. Relative and
// absolute paths are both allowed; the path is created by the caller, not
// resolved inside a sandbox.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// ValidatePresetName validates a preset name from the config file.
// Names must be simple identifiers so they can double as CLI flag values.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("-_", r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid character %q", r)
		}
	}
	return nil
}
