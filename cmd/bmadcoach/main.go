package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/cli"
	"github.com/jmorland/bmadcoach/internal/db"
	"github.com/jmorland/bmadcoach/internal/repository"
	"github.com/jmorland/bmadcoach/internal/service"
	"github.com/jmorland/bmadcoach/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.bmadcoach/bmadcoach.db
	dbPath := os.Getenv("BMADCOACH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bmadcoach", "bmadcoach.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	progressRepo := repository.NewSQLiteProgressRepo(database)
	observationRepo := repository.NewSQLiteObservationRepo(database)

	// Extra lesson files live beside the builtin catalog; the dir is
	// optional and missing is not an error.
	catalogs := &catalog.FileSource{Dir: os.Getenv("BMADCOACH_CATALOG")}

	adapter := telemetry.NewFileAdapter(telemetry.LoadConfig())

	app := &cli.App{
		Learning:     service.NewLearningService(adapter, catalogs, progressRepo, observationRepo),
		Progress:     progressRepo,
		Observations: observationRepo,
		Catalogs:     catalogs,
		Interactive:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
