// Package cli implements the wallcraft command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wallcraft/internal/adapter"
	"wallcraft/internal/adapter/source/wpcraft"
	"wallcraft/internal/domain"
	"wallcraft/internal/fetch"
	"wallcraft/internal/service"
	"wallcraft/internal/store"
)

var (
	// version is set via ldflags at build time.
	version = "dev"

	cfgFile string
	dryRun  bool
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wallcraft",
		Short:         "Browse wallpaperscraft images from the command line",
		Long:          "A command-line wallpaper manager: fetches listings from wallpaperscraft.com,\ncaches them locally, tracks your likes, and rotates the desktop background.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("wallcraft %s\n", version))
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	root.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "never change the current wallpaper")

	root.AddCommand(newStatusCmd())
	root.AddCommand(newNextCmd())
	root.AddCommand(newNextCronCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newUseCmd())
	root.AddCommand(newWallpaperCmd())
	root.AddCommand(newLikeCmd())
	root.AddCommand(newDislikeCmd())
	root.AddCommand(newUnlikeCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newMinScoreCmd())
	root.AddCommand(newAutoCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs: config, logger, store, site
// client and the services on top. One app lives for one invocation; the
// store is read at start and written back as commands mutate it.
type app struct {
	cfg    *adapter.Config
	logger *slog.Logger
	store  *store.Store
	site   *wpcraft.Client

	prefs    *service.Preferences
	resolver *service.Resolver
	switcher *service.Switcher
	selector *service.Selector

	detectRes func() (domain.Resolution, error)
	res       domain.Resolution
	resKnown  bool
}

func newApp() (*app, error) {
	cfg, err := adapter.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	site := wpcraft.NewClient("", cfg.Fetch.RequestInterval, logger)
	prefs := service.NewPreferences(st, site, logger)
	fetcher := fetch.New(site, cfg.Fetch.Workers, logger)
	resolver := service.NewResolver(st, fetcher, prefs, cfg.MinScore, logger)
	setter := adapter.NewGnomeSetter(logger)
	imageDir := filepath.Join(cfg.CacheDir, "images")
	switcher := service.NewSwitcher(site, setter, st, imageDir, cfg.HistoryLimit, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		site:      site,
		prefs:     prefs,
		resolver:  resolver,
		switcher:  switcher,
		selector:  service.NewSelector(logger),
		detectRes: adapter.DetectResolution,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
}

// scope returns the configured scope.
func (a *app) scope() (domain.Scope, error) {
	return domain.ParseScope(a.cfg.Scope)
}

// resolution returns the configured resolution, autodetecting the screen
// size when the config says "default". The result is memoized so commands
// that need it more than once run xrandr at most once.
func (a *app) resolution() (domain.Resolution, error) {
	if a.resKnown {
		return a.res, nil
	}
	var (
		res domain.Resolution
		err error
	)
	if a.cfg.Resolution == "default" {
		res, err = a.detectRes()
	} else {
		res, err = domain.ParseResolution(a.cfg.Resolution)
	}
	if err != nil {
		return domain.Resolution{}, err
	}
	a.res, a.resKnown = res, true
	return res, nil
}
