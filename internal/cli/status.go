package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Display information about the current wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			state := a.store.GetState()
			if state.Current == "" {
				fmt.Println("No wallpaper has been set yet.")
			} else {
				fmt.Printf("%s %s\n", labelStyle.Render("Current wallpaper:"), state.Current)
				if a.prefs.IsLiked(state.Current) {
					fmt.Println(likeStyle.Render("You like this wallpaper."))
				} else if a.prefs.IsDisliked(state.Current) {
					fmt.Println(nopeStyle.Render("You dislike this wallpaper."))
				}

				res, err := a.resolution()
				if err != nil {
					return err
				}
				if md, err := a.site.Metadata(ctx, state.Current); err == nil && len(md.Tags) > 0 {
					fmt.Printf("%s %s\n", labelStyle.Render("Tags:"), strings.Join(md.Tags, ", "))
				}
				if url, err := a.site.DownloadURL(ctx, state.Current, res); err == nil && url != "" {
					fmt.Printf("%s %s\n", labelStyle.Render("Image URL:"), url)
				}
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
			fmt.Printf("Using images %s, %d wallpapers available.\n", scope.Describe(), len(ids))

			if state.Auto != "" {
				fmt.Printf("Automatically switching every %s.\n", state.Auto)
			}
			return nil
		},
	}
}
