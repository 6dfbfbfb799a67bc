package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallcraft/internal/domain"
)

func newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like",
		Short: "Mark the current wallpaper as liked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := currentWallpaper(a)
			if err != nil {
				return err
			}
			changed, err := a.prefs.Mark(cmd.Context(), id, true)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("Current wallpaper is already marked as liked.")
				return nil
			}
			fmt.Println("Marked current wallpaper as liked.")
			return nil
		},
	}
}

func newDislikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dislike",
		Short: "Mark the current wallpaper as disliked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := currentWallpaper(a)
			if err != nil {
				return err
			}
			changed, err := a.prefs.Mark(cmd.Context(), id, false)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("Current wallpaper is already marked as disliked.")
				return nil
			}
			fmt.Println("Marked current wallpaper as disliked.")
			fmt.Println("Use 'wallcraft next' to switch to a different wallpaper.")
			return nil
		},
	}
}

func newUnlikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlike",
		Short: "Remove the like/dislike mark from the current wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := currentWallpaper(a)
			if err != nil {
				return err
			}
			if err := a.prefs.Unmark(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Removed like/dislike mark from current wallpaper.")
			return nil
		},
	}
}

func currentWallpaper(a *app) (domain.WallpaperID, error) {
	state := a.store.GetState()
	if state.Current == "" {
		return "", fmt.Errorf("no current wallpaper; run 'wallcraft next' first")
	}
	return state.Current, nil
}
