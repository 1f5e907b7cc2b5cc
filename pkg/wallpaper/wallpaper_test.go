package wallpaper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectDesktop(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want desktop
	}{
		{"plain gnome", "GNOME", desktopGNOME},
		{"ubuntu session", "ubuntu:GNOME", desktopGNOME},
		{"lowercase", "gnome", desktopGNOME},
		{"cinnamon", "X-Cinnamon:Cinnamon", desktopGNOME},
		{"kde", "KDE", desktopKDE},
		{"plasma", "plasma", desktopKDE},
		{"empty", "", desktopUnknown},
		{"unknown", "sway", desktopUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectDesktop(tt.env); got != tt.want {
				t.Errorf("detectDesktop(%q) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

func TestGnomeCommands(t *testing.T) {
	cmds := gnomeCommands("file:///tmp/wall.png")
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2 (light and dark)", len(cmds))
	}

	keys := map[string]bool{}
	for _, args := range cmds {
		if args[0] != "gsettings" || args[1] != "set" || args[2] != "org.gnome.desktop.background" {
			t.Errorf("unexpected command %v", args)
		}
		if args[len(args)-1] != "file:///tmp/wall.png" {
			t.Errorf("command %v does not end with the URI", args)
		}
		keys[args[3]] = true
	}
	if !keys["picture-uri"] || !keys["picture-uri-dark"] {
		t.Errorf("commands must cover both picture-uri variants, got %v", keys)
	}
}

func TestStagedNameUnique(t *testing.T) {
	a, b := stagedName(), stagedName()
	if a == b {
		t.Errorf("staged names must differ, got %q twice", a)
	}
	for _, n := range []string{a, b} {
		if !strings.HasPrefix(n, "wallpaper-") || !strings.HasSuffix(n, ".png") {
			t.Errorf("staged name %q has wrong shape", n)
		}
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	if err := os.WriteFile(src, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pixels" {
		t.Errorf("dst content = %q, want %q", got, "pixels")
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := copyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst")); err == nil {
		t.Error("copyFile should fail for a missing source")
	}
}
