package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show skill levels, completed lessons and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			progress, err := app.Progress.Get(ctx)
			if err != nil {
				return err
			}

			observations, err := app.Observations.ListRecent(ctx, recent)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProgress(progress, observations))
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 10, "Number of recent observations to show")

	return cmd
}
