// Package config loads optional defaults and named presets for the
// triangler CLI from a TOML file.
//
// The file lives at <user config dir>/triangler/triangler.toml and is
// entirely optional; a missing file yields the built-in defaults. Flags
// override preset values, presets override file-level defaults, and
// file-level defaults override the built-ins.
//
// Example:
//
//	width  = 1920
//	height = 1080
//	dots   = 500000
//	color  = "#ffffff"
//
//	[preset.4k]
//	width  = 3840
//	height = 2160
//	dots   = 2000000
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/triangler/pkg/errors"
)

// Preset is a named bundle of generation parameters. Zero fields mean
// "inherit from the file-level default".
type Preset struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Dots   uint64 `toml:"dots"`
	Color  string `toml:"color"`
}

// Config holds file-level defaults plus named presets.
type Config struct {
	Width     int               `toml:"width"`
	Height    int               `toml:"height"`
	Dots      uint64            `toml:"dots"`
	Color     string            `toml:"color"`
	OutputDir string            `toml:"output_dir"`
	Presets   map[string]Preset `toml:"preset"`
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Width:  1920,
		Height: 1080,
		Dots:   500000,
	}
}

// DefaultPath returns the conventional config file location for this user.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate user config dir")
	}
	return filepath.Join(dir, "triangler", "triangler.toml"), nil
}

// Load reads the config file at path, layering it over the built-in
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown key %q in %s", undecoded[0].String(), path)
	}

	for name := range cfg.Presets {
		if err := errors.ValidatePresetName(name); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// Resolve returns the effective parameters for an optional preset name.
// An empty name selects the file-level defaults. Unset preset fields
// inherit the file-level values.
func (c Config) Resolve(preset string) (Preset, error) {
	base := Preset{Width: c.Width, Height: c.Height, Dots: c.Dots, Color: c.Color}
	if preset == "" {
		return base, nil
	}

	if err := errors.ValidatePresetName(preset); err != nil {
		return Preset{}, err
	}
	p, ok := c.Presets[preset]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", preset)
	}

	if p.Width == 0 {
		p.Width = base.Width
	}
	if p.Height == 0 {
		p.Height = base.Height
	}
	if p.Dots == 0 {
		p.Dots = base.Dots
	}
	if p.Color == "" {
		p.Color = base.Color
	}
	return p, nil
}
