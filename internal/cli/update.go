package cli

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh the list of available wallpapers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			scope, err := a.scope()
			if err != nil {
				return err
			}
			res, err := a.resolution()
			if err != nil {
				return err
			}

			ids, err := a.resolver.Resolve(cmd.Context(), scope, res, true, progressPrinter(scope))
			if err != nil {
				return err
			}
			printCount(len(ids), scope)
			return nil
		},
	}
}
