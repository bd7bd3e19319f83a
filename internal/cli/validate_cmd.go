package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	coachapp "github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

func newValidateCmd(app *App) *cobra.Command {
	var projectDir string
	var start bool

	cmd := &cobra.Command{
		Use:   "validate <lesson-id>",
		Short: "Check whether a lesson is usable against a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lessonID := args[0]
			ctx := context.Background()

			result, err := app.Learning.ValidateLessonEligibility(ctx, coachapp.ValidateRequest{
				ProjectDir: projectDir,
				LessonID:   lessonID,
			})
			if err != nil {
				return err
			}

			cat, _, err := app.Catalogs.Catalog()
			if err != nil {
				return err
			}
			lesson, ok := cat.Lesson(lessonID)
			if !ok {
				return fmt.Errorf("lesson %q not found in catalog", lessonID)
			}

			fmt.Print(formatter.FormatValidation(lesson, result))

			if start && result.IsValid && app.Interactive {
				confirmed, err := confirmStart(lesson.Title)
				if err != nil {
					return err
				}
				if confirmed {
					fmt.Printf("\nStarted %s. Report the outcome with:\n  bmadcoach track %s --outcome success\n",
						formatter.Bold(lesson.Title), lesson.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "BMAD project directory")
	cmd.Flags().BoolVar(&start, "start", false, "Offer to start the lesson when eligible")

	return cmd
}

func confirmStart(title string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Start %q now?", title)).
				Value(&confirmed),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
