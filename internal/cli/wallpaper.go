package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallcraft/internal/domain"
)

func newWallpaperCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "wallpaper <id>",
		Aliases: []string{"wp"},
		Short:   "Immediately set the wallpaper with the given ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.resolution()
			if err != nil {
				return err
			}
			id := domain.WallpaperID(args[0])
			if err := a.switcher.Switch(cmd.Context(), id, res, dryRun); err != nil {
				return err
			}

			suffix := ""
			if dryRun {
				suffix = faintStyle.Render(" (dry run)")
			}
			fmt.Printf("Switching to wallpaper %s%s\n", id, suffix)
			return nil
		},
	}
}
