package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	coachapp "github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

func newSuggestCmd(app *App) *cobra.Command {
	var view, projectDir string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get contextual learning suggestions for a UI view",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := app.Learning.ContextualSuggestions(context.Background(), coachapp.SuggestRequest{
				View:       view,
				ProjectDir: projectDir,
			})
			if err != nil {
				return err
			}

			if interactive && app.Interactive {
				return runSuggestionBrowser(suggestions)
			}

			fmt.Print(formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "projects", "UI view to suggest for (workflow, dispatch, communication, creator, projects)")
	cmd.Flags().StringVar(&projectDir, "project", "", "BMAD project directory for project-aware suggestions")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse suggestions in an interactive list")

	return cmd
}
