package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tabdeck/internal/browser"
	"tabdeck/internal/config"
)

func newSearchCmd(app *App) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Open a web search in the browser",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				path = config.ResolveConfigPath()
			}
			cfg, err := config.LoadOrCreate(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			u, err := browser.SearchURL(cfg.SearchURL, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), u)
				return nil
			}
			if err := app.opener.Open(u); err != nil {
				return fmt.Errorf("open %s: %w", u, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", u)
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the search URL instead of opening it")
	return cmd
}
