package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/repository"
	"github.com/jmorland/bmadcoach/internal/service"
	"github.com/jmorland/bmadcoach/internal/telemetry"
	"github.com/jmorland/bmadcoach/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	conn := testutil.NewTestDB(t)

	progressRepo := repository.NewSQLiteProgressRepo(conn)
	observationRepo := repository.NewSQLiteObservationRepo(conn)
	catalogs := &catalog.FileSource{}
	adapter := telemetry.NewFileAdapter(telemetry.DefaultConfig())

	return &App{
		Learning:     service.NewLearningService(adapter, catalogs, progressRepo, observationRepo),
		Progress:     progressRepo,
		Observations: observationRepo,
		Catalogs:     catalogs,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeSnapshot(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bmad"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bmad", "state.yaml"), []byte(content), 0o644))
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "bmadcoach")
}

func TestAnalyzeCmd_RunsAgainstSnapshot(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()
	writeSnapshot(t, dir, `
projectId: proj-cli
currentPhase: Development
totalStories: 10
completedStories: 8
activeStory: story-003
agents:
  Developer:
    status: Active
`)

	_, err := executeCmd(t, app, "analyze", "--project", dir)
	require.NoError(t, err)
}

func TestAnalyzeCmd_MissingProjectStillSucceeds(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "analyze", "--project", t.TempDir())
	require.NoError(t, err)
}

func TestSuggestCmd_UnknownViewFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "suggest", "--view", "nonsense")
	assert.Error(t, err)
}

func TestSuggestCmd_KnownView(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "suggest", "--view", "workflow")
	require.NoError(t, err)
}

func TestValidateCmd_UnknownLessonFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "validate", "no-such-lesson", "--project", t.TempDir())
	assert.Error(t, err)
}

func TestValidateCmd_BuiltinLesson(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "validate", "bmad-fundamentals", "--project", t.TempDir())
	require.NoError(t, err)
}

func TestTrackCmd_RecordsCompletion(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()
	writeSnapshot(t, dir, `
projectId: proj-cli
currentPhase: Planning
`)

	_, err := executeCmd(t, app, "track", "bmad-fundamentals",
		"--project", dir,
		"--outcome", "success",
		"--skills", "WorkflowManagement")
	require.NoError(t, err)

	progress, err := app.Progress.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, progress.HasCompleted("bmad-fundamentals"))
}

func TestTrackCmd_InvalidOutcomeFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "track", "bmad-fundamentals",
		"--project", t.TempDir(), "--outcome", "sideways")
	assert.Error(t, err)
}

func TestCatalogCmd_ListsBuiltinLessons(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "catalog")
	require.NoError(t, err)
}

func TestProgressCmd_EmptyStore(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
}
