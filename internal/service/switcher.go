package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wallcraft/internal/domain"
	"wallcraft/internal/store"
)

// WallpaperSetter applies an image file as the desktop background.
type WallpaperSetter interface {
	Set(path string) error
}

// Switcher downloads a wallpaper image (once; images are cached on disk
// by ID) and makes it the desktop background, recording the change in the
// session state.
type Switcher struct {
	site         domain.Site
	setter       WallpaperSetter
	store        *store.Store
	imageDir     string
	historyLimit int
	logger       *slog.Logger
}

func NewSwitcher(site domain.Site, setter WallpaperSetter, st *store.Store, imageDir string, historyLimit int, logger *slog.Logger) *Switcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Switcher{
		site:         site,
		setter:       setter,
		store:        st,
		imageDir:     imageDir,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Switch makes id the current wallpaper at res. With dryRun the image is
// still downloaded but the desktop and the session state are untouched.
func (s *Switcher) Switch(ctx context.Context, id domain.WallpaperID, res domain.Resolution, dryRun bool) error {
	url, err := s.site.DownloadURL(ctx, id, res)
	if err != nil {
		return err
	}
	if url == "" {
		return fmt.Errorf("%w: %s at %s", domain.ErrWallpaperNotFound, id, res)
	}

	path, err := s.ensureImage(ctx, id, url)
	if err != nil {
		return err
	}

	if dryRun {
		s.logger.Info("dry run, not switching", "id", id, "path", path)
		return nil
	}

	if err := s.setter.Set(path); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	state := s.store.GetState()
	state.PushHistory(state.Current, s.historyLimit)
	state.Current = id
	if err := s.store.SaveState(state); err != nil {
		return err
	}

	s.logger.Info("switched wallpaper", "id", id, "resolution", res.String())
	return nil
}

// ensureImage downloads the image to the on-disk cache unless it is
// already there, and returns the local path.
func (s *Switcher) ensureImage(ctx context.Context, id domain.WallpaperID, url string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(url), ".")
	if ext == "" {
		ext = "jpg"
	}
	path := filepath.Join(s.imageDir, fmt.Sprintf("%s.%s", id, ext))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	body, err := s.site.Download(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer body.Close()

	if err := os.MkdirAll(s.imageDir, 0755); err != nil {
		return "", err
	}

	// Write through a temp file so an interrupted download never leaves a
	// truncated image behind under the final name.
	tmp, err := os.CreateTemp(s.imageDir, string(id)+".*.partial")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}
