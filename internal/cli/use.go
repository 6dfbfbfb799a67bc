package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"wallcraft/internal/adapter"
	"wallcraft/internal/domain"
)

func newUseCmd() *cobra.Command {
	use := &cobra.Command{
		Use:   "use",
		Short: "Select which wallpapers to use",
	}
	use.AddCommand(
		newUseScopeCmd("tag <tag>", "Wallpaper tag to choose from", func(args []string) string {
			return "tag/" + strings.ToLower(args[0])
		}, cobra.ExactArgs(1)),
		newUseScopeCmd("catalog <catalog>", "Wallpaper catalog to choose from", func(args []string) string {
			return "catalog/" + strings.ToLower(args[0])
		}, cobra.ExactArgs(1)),
		newUseScopeCmd("search <query>", "Search query to pick wallpapers from", func(args []string) string {
			return "search/" + strings.ToLower(strings.Join(args, " "))
		}, cobra.MinimumNArgs(1)),
		newUseScopeCmd("liked", "Use wallpapers marked as liked", func([]string) string {
			return "liked"
		}, cobra.NoArgs),
		newUseScopeCmd("disliked", "Use wallpapers marked as disliked", func([]string) string {
			return "disliked"
		}, cobra.NoArgs),
	)
	return use
}

func newUseScopeCmd(use, short string, scopeOf func(args []string) string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			scope, err := domain.ParseScope(scopeOf(argv))
			if err != nil {
				return err
			}
			a.cfg.Scope = scope.String()
			if err := adapter.SaveConfig(a.cfg); err != nil {
				return err
			}

			res, err := a.resolution()
			if err != nil {
				return err
			}
			ids, err := a.resolver.Resolve(cmd.Context(), scope, res, false, progressPrinter(scope))
			if err != nil {
				return err
			}
			printCount(len(ids), scope)
			return nil
		},
	}
}
