package cli

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"wallcraft/internal/domain"
)

func newShowCmd() *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Display liked/disliked wallpapers and tag statistics",
	}
	show.AddCommand(newShowListCmd("liked"), newShowListCmd("disliked"), newShowTagsCmd())
	return show
}

func newShowListCmd(which string) *cobra.Command {
	return &cobra.Command{
		Use:   which,
		Short: fmt.Sprintf("Show the list of %s wallpapers", which),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var ids []domain.WallpaperID
			if which == "liked" {
				ids = a.prefs.Liked()
			} else {
				ids = a.prefs.Disliked()
			}
			if len(ids) == 0 {
				fmt.Printf("No %s wallpapers.\n", which)
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func newShowTagsCmd() *cobra.Command {
	var (
		limit     int
		recompute bool
	)
	cmd := &cobra.Command{
		Use:   "tags [filter]",
		Short: "Show tag votes derived from liked/disliked wallpapers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if recompute {
				if err := a.prefs.RecomputeTagVotes(cmd.Context()); err != nil {
					return err
				}
			}

			ranked := a.prefs.TopTags(limit)
			if len(args) == 1 {
				ranked = filterTags(ranked, args[0])
			}
			if len(ranked) == 0 {
				fmt.Println("No tag votes yet. Like or dislike some wallpapers first.")
				return nil
			}
			for _, tv := range ranked {
				fmt.Printf("%+d\t%s\n", tv.Votes, tv.Tag)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of tags to show (ties at the boundary are kept)")
	cmd.Flags().BoolVar(&recompute, "recompute", false, "rebuild tag votes from wallpaper metadata first")
	return cmd
}

// filterTags keeps entries whose tag fuzzily matches the filter.
func filterTags(ranked []domain.TagVote, filter string) []domain.TagVote {
	kept := ranked[:0:0]
	for _, tv := range ranked {
		if fuzzy.MatchFold(filter, tv.Tag) {
			kept = append(kept, tv)
		}
	}
	return kept
}
