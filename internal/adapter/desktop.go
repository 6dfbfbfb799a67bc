package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// GnomeSetter applies wallpapers through gsettings. It satisfies
// service.WallpaperSetter.
type GnomeSetter struct {
	logger *slog.Logger
}

func NewGnomeSetter(logger *slog.Logger) *GnomeSetter {
	if logger == nil {
		logger = slog.Default()
	}
	return &GnomeSetter{logger: logger}
}

// Set points both the light and dark background keys at path.
func (g *GnomeSetter) Set(path string) error {
	uri := "file://" + path
	for _, key := range []string{"picture-uri", "picture-uri-dark"} {
		cmd := exec.Command("gsettings", "set", "org.gnome.desktop.background", key, uri)
		if out, err := cmd.CombinedOutput(); err != nil {
			// picture-uri-dark only exists on newer GNOME
			if key == "picture-uri-dark" {
				g.logger.Debug("skipping dark background key", "error", err)
				continue
			}
			return fmt.Errorf("gsettings failed: %v: %s", err, out)
		}
	}
	return nil
}
