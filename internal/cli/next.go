package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wallcraft/internal/adapter"
	"wallcraft/internal/domain"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Switch to the next wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return runNext(cmd, a)
		},
	}
}

// newNextCronCmd is the entry point cron uses. Cron jobs run outside the
// desktop session, so the session bus address is recovered from a running
// session process before switching; gsettings is a no-op without it.
func newNextCronCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "next-cron",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			adapter.AdoptSessionBus(a.logger)
			return runNext(cmd, a)
		},
	}
}

func runNext(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()

	state := a.store.GetState()
	state.Counter++
	if err := a.store.SaveState(state); err != nil {
		a.logger.Warn("failed to save state", "error", err)
	}

	scope, err := a.scope()
	if err != nil {
		return err
	}
	res, err := a.resolution()
	if err != nil {
		return err
	}

	ids, err := a.resolver.Resolve(ctx, scope, res, false, progressPrinter(scope))
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Printf("No wallpapers %s were found.\n", scope.Describe())
		return nil
	}

	id, err := a.selector.PickNext(ctx, ids, func(ctx context.Context, id domain.WallpaperID) error {
		return a.switcher.Switch(ctx, id, res, dryRun)
	})
	if err != nil {
		return err
	}

	suffix := ""
	if dryRun {
		suffix = faintStyle.Render(" (dry run)")
	}
	fmt.Printf("Switching to wallpaper %s%s\n", id, suffix)
	return nil
}
