package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/triangler/pkg/config"
	"github.com/matzehuels/triangler/pkg/errors"
)

func TestResolveParamsDefaults(t *testing.T) {
	popts, err := resolveParams(config.Default(), "", paramFlags{})
	if err != nil {
		t.Fatalf("resolveParams() error: %v", err)
	}

	if popts.Width != 1920 || popts.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", popts.Width, popts.Height)
	}
	if popts.Dots != 500000 {
		t.Errorf("dots = %d, want 500000", popts.Dots)
	}
	if popts.Color != nil {
		t.Errorf("color = %q, want unset", *popts.Color)
	}
	if popts.Output != "" {
		t.Errorf("output = %q, want empty", popts.Output)
	}
}

func TestResolveParamsPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "abcdef"
	cfg.Presets = map[string]config.Preset{
		"phone": {Width: 1080, Height: 2400, Dots: 750000, Color: "ff0000"},
	}

	tests := []struct {
		name      string
		preset    string
		flags     paramFlags
		wantW     int
		wantH     int
		wantDots  uint64
		wantColor string
	}{
		{
			name:      "preset values apply",
			preset:    "phone",
			wantW:     1080,
			wantH:     2400,
			wantDots:  750000,
			wantColor: "ff0000",
		},
		{
			name:      "flags override preset",
			preset:    "phone",
			flags:     paramFlags{width: 640, widthSet: true, dots: 100, dotsSet: true},
			wantW:     640,
			wantH:     2400,
			wantDots:  100,
			wantColor: "ff0000",
		},
		{
			name:      "color flag wins over config",
			flags:     paramFlags{color: "00ff00", colorSet: true},
			wantW:     1920,
			wantH:     1080,
			wantDots:  500000,
			wantColor: "00ff00",
		},
		{
			name:      "config color applies without flag",
			wantW:     1920,
			wantH:     1080,
			wantDots:  500000,
			wantColor: "abcdef",
		},
		{
			name:     "explicit zero dots sticks",
			flags:    paramFlags{dots: 0, dotsSet: true},
			wantW:    1920,
			wantH:    1080,
			wantDots: 0,
			// config color still applies
			wantColor: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			popts, err := resolveParams(cfg, tt.preset, tt.flags)
			if err != nil {
				t.Fatalf("resolveParams() error: %v", err)
			}

			if popts.Width != tt.wantW || popts.Height != tt.wantH {
				t.Errorf("dimensions = %dx%d, want %dx%d", popts.Width, popts.Height, tt.wantW, tt.wantH)
			}
			if popts.Dots != tt.wantDots {
				t.Errorf("dots = %d, want %d", popts.Dots, tt.wantDots)
			}
			switch {
			case tt.wantColor == "" && popts.Color != nil:
				t.Errorf("color = %q, want unset", *popts.Color)
			case tt.wantColor != "" && popts.Color == nil:
				t.Errorf("color unset, want %q", tt.wantColor)
			case tt.wantColor != "" && *popts.Color != tt.wantColor:
				t.Errorf("color = %q, want %q", *popts.Color, tt.wantColor)
			}
		})
	}
}

func TestResolveParamsSeedSuppressesColor(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "abcdef"

	popts, err := resolveParams(cfg, "", paramFlags{
		seedImage: "photo.jpg",
		color:     "ff0000",
		colorSet:  true,
	})
	if err != nil {
		t.Fatalf("resolveParams() error: %v", err)
	}

	if popts.SeedPath != "photo.jpg" {
		t.Errorf("seed path = %q, want photo.jpg", popts.SeedPath)
	}
	if popts.Color != nil {
		t.Errorf("color = %q, want unset when a seed image is given", *popts.Color)
	}
}

func TestResolveParamsOutputDir(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = filepath.Join("some", "dir")

	t.Run("default filename joins output dir", func(t *testing.T) {
		popts, err := resolveParams(cfg, "", paramFlags{})
		if err != nil {
			t.Fatalf("resolveParams() error: %v", err)
		}

		want := filepath.Join("some", "dir", "1920x1080 - 500000.png")
		if popts.Output != want {
			t.Errorf("output = %q, want %q", popts.Output, want)
		}
	})

	t.Run("explicit output wins", func(t *testing.T) {
		popts, err := resolveParams(cfg, "", paramFlags{output: "custom.png"})
		if err != nil {
			t.Fatalf("resolveParams() error: %v", err)
		}

		if popts.Output != "custom.png" {
			t.Errorf("output = %q, want custom.png", popts.Output)
		}
	})
}

func TestResolveParamsUnknownPreset(t *testing.T) {
	_, err := resolveParams(config.Default(), "nope", paramFlags{})
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidPreset)
	}
}
