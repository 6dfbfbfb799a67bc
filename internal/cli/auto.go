package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wallcraft/internal/adapter"
)

func newAutoCmd() *cobra.Command {
	auto := &cobra.Command{
		Use:   "auto",
		Short: "Automatically switch wallpapers every N hours/minutes",
	}

	auto.AddCommand(&cobra.Command{
		Use:   "hours <N>",
		Short: "Switch to the next wallpaper every N hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuto(args[0], "hours")
		},
	})
	auto.AddCommand(&cobra.Command{
		Use:   "minutes <N>",
		Short: "Switch to the next wallpaper every N minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuto(args[0], "minutes")
		},
	})
	auto.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Disable automatic wallpaper switching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := adapter.NewCrontab(a.logger).Remove(); err != nil {
				return err
			}
			state := a.store.GetState()
			state.Auto = ""
			if err := a.store.SaveState(state); err != nil {
				return err
			}
			fmt.Println("Automatic switching disabled.")
			return nil
		},
	})
	return auto
}

func runAuto(arg, unit string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid interval %q: expected a positive number of %s", arg, unit)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	crontab := adapter.NewCrontab(a.logger)
	if unit == "hours" {
		err = crontab.InstallHours(n)
	} else {
		err = crontab.InstallMinutes(n)
	}
	if err != nil {
		return err
	}

	state := a.store.GetState()
	state.Auto = fmt.Sprintf("%d %s", n, unit)
	if err := a.store.SaveState(state); err != nil {
		return err
	}
	fmt.Printf("Automatically switching wallpaper every %d %s.\n", n, unit)
	return nil
}
