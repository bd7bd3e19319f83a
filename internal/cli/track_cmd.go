package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	coachapp "github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/cli/formatter"
	"github.com/jmorland/bmadcoach/internal/domain"
)

func newTrackCmd(app *App) *cobra.Command {
	var projectDir, outcome string
	var skills []string

	cmd := &cobra.Command{
		Use:   "track <lesson-id>",
		Short: "Record the outcome of applying a lesson to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applied := make([]domain.Skill, 0, len(skills))
			for _, s := range skills {
				applied = append(applied, domain.Skill(s))
			}

			err := app.Learning.TrackProjectLearning(context.Background(), coachapp.TrackRequest{
				ProjectDir:    projectDir,
				LessonID:      args[0],
				SkillsApplied: applied,
				Outcome:       domain.LearningOutcome(outcome),
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s recorded %s outcome for %s\n",
				formatter.StyleGreen.Render("✓"), outcome, formatter.Bold(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "BMAD project directory")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Learning outcome: success, partial, or failed")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Skills applied during the lesson")
	_ = cmd.MarkFlagRequired("outcome")

	return cmd
}
