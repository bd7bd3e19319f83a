package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/repository"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Learning     app.LearningUseCase
	Progress     repository.ProgressRepo
	Observations repository.ObservationRepo
	Catalogs     catalog.Source

	// Interactive is true when stdout is a terminal, enabling the
	// bubbletea suggestion browser and huh confirmation forms.
	Interactive bool
}

// NewRootCmd creates the top-level "bmadcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bmadcoach",
		Short: "Contextual learning recommendations for BMAD projects",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newSuggestCmd(app),
		newValidateCmd(app),
		newTrackCmd(app),
		newCatalogCmd(app),
		newProgressCmd(app),
	)

	return root
}
