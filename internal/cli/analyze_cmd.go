package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	coachapp "github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a BMAD project and recommend learning content",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Learning.AnalyzeProject(context.Background(), coachapp.AnalyzeRequest{
				ProjectDir: projectDir,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatAnalysis(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "BMAD project directory")

	return cmd
}
