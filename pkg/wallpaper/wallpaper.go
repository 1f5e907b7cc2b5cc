// Package wallpaper sets a generated image as the desktop background.
//
// The image is first copied into the user cache dir under a unique name,
// because several desktop environments cache the wallpaper by path and
// ignore updates to a file they have already loaded. The platform setter is
// then invoked through os/exec (gsettings on GNOME, plasma-apply-wallpaperimage
// on KDE, osascript on macOS, PowerShell on Windows).
//
// All failures surface with the WALLPAPER_FAILED error code; an unrecognized
// platform or desktop is UNSUPPORTED.
package wallpaper

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/triangler/pkg/errors"
)

// Set installs the image at path as the desktop background.
// The context bounds the external setter process.
func Set(ctx context.Context, path string) error {
	staged, err := stage(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "linux":
		return setLinux(ctx, staged)
	case "darwin":
		return setDarwin(ctx, staged)
	case "windows":
		return setWindows(ctx, staged)
	default:
		return errors.New(errors.ErrCodeUnsupported, "wallpaper setting not supported on %s", runtime.GOOS)
	}
}

// stage copies the image to a unique path under the user cache dir.
// The fresh name defeats by-path wallpaper caches.
func stage(path string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeWallpaperFailed, err, "locate user cache dir")
	}

	dir := filepath.Join(cacheDir, "triangler")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeWallpaperFailed, err, "create %s", dir)
	}

	target := filepath.Join(dir, stagedName())
	if err := copyFile(path, target); err != nil {
		return "", err
	}
	return target, nil
}

// stagedName returns a fresh wallpaper file name, e.g.
// "wallpaper-1b4e28ba-2fa1-11d2-883f-0016d3cca427.png".
func stagedName() string {
	return fmt.Sprintf("wallpaper-%s.png", uuid.NewString())
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "copy to %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "close %s", dst)
	}
	return nil
}

// desktop identifies the Linux desktop family used to pick a setter.
type desktop int

const (
	desktopUnknown desktop = iota
	desktopGNOME
	desktopKDE
)

// detectDesktop classifies the XDG_CURRENT_DESKTOP value.
// The variable is a colon-separated list, e.g. "ubuntu:GNOME".
func detectDesktop(xdgCurrentDesktop string) desktop {
	for _, part := range strings.Split(xdgCurrentDesktop, ":") {
		switch strings.ToUpper(strings.TrimSpace(part)) {
		case "GNOME", "UBUNTU", "UNITY", "PANTHEON", "CINNAMON":
			return desktopGNOME
		case "KDE", "PLASMA":
			return desktopKDE
		}
	}
	return desktopUnknown
}

// gnomeCommands returns the gsettings invocations for a wallpaper URI.
// Both the light and dark variants are set so the change is visible
// regardless of the active color scheme.
func gnomeCommands(uri string) [][]string {
	return [][]string{
		{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri},
		{"gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri},
	}
}

func setLinux(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "resolve %s", path)
	}

	switch detectDesktop(os.Getenv("XDG_CURRENT_DESKTOP")) {
	case desktopGNOME:
		for _, args := range gnomeCommands("file://" + abs) {
			if err := runSetter(ctx, args); err != nil {
				return err
			}
		}
		return nil
	case desktopKDE:
		return runSetter(ctx, []string{"plasma-apply-wallpaperimage", abs})
	default:
		return errors.New(errors.ErrCodeUnsupported,
			"unrecognized desktop %q; set the wallpaper manually from %s",
			os.Getenv("XDG_CURRENT_DESKTOP"), abs)
	}
}

func setDarwin(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "resolve %s", path)
	}
	script := fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to %q`, abs)
	return runSetter(ctx, []string{"osascript", "-e", script})
}

func setWindows(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err, "resolve %s", path)
	}
	script := fmt.Sprintf(
		`Set-ItemProperty -Path 'HKCU:\Control Panel\Desktop' -Name Wallpaper -Value %q; `+
			`rundll32.exe user32.dll, UpdatePerUserSystemParameters`, abs)
	return runSetter(ctx, []string{"powershell", "-NoProfile", "-Command", script})
}

func runSetter(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(errors.ErrCodeWallpaperFailed, err,
			"%s: %s", args[0], strings.TrimSpace(string(out)))
	}
	return nil
}
