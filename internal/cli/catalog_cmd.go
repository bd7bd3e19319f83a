package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List all available lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, warnings, err := app.Catalogs.Catalog()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, formatter.StyleYellow.Render("⚠ "+w))
			}

			progress, err := app.Progress.Get(context.Background())
			if err != nil {
				progress = nil
			}

			fmt.Print(formatter.FormatCatalog(cat.Lessons(), progress))
			return nil
		},
	}

	return cmd
}
