package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wallcraft/internal/adapter"
)

func newMinScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minscore <score>",
		Short: "Only use wallpapers rated at least this score (0 disables)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil || score < 0 {
				return fmt.Errorf("invalid minimum score %q", args[0])
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.cfg.MinScore = score
			if err := adapter.SaveConfig(a.cfg); err != nil {
				return err
			}

			// Cached lists were built with the old filter; drop them all.
			a.store.InvalidateScopes()

			if score == 0 {
				fmt.Println("Minimum score filter disabled.")
			} else {
				fmt.Printf("Minimum score set to %v. Run 'wallcraft update' to refresh.\n", score)
			}
			return nil
		},
	}
}
