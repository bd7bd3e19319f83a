package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorland/bmadcoach/internal/domain"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	assert.Equal(t, 7, c.Len())

	fundamentals, ok := c.Lesson("bmad-fundamentals")
	require.True(t, ok)
	assert.Empty(t, fundamentals.Prerequisites)
	assert.Equal(t, domain.DifficultyBeginner, fundamentals.Difficulty)

	// Every prerequisite must resolve inside the catalog.
	for _, lesson := range c.Lessons() {
		for _, prereq := range lesson.Prerequisites {
			_, found := c.Lesson(prereq)
			assert.True(t, found, "lesson %s has dangling prerequisite %s", lesson.ID, prereq)
		}
	}
}

func TestBuiltinCatalog_OrderIsStable(t *testing.T) {
	lessons := Builtin().Lessons()
	require.NotEmpty(t, lessons)
	assert.Equal(t, "bmad-fundamentals", lessons[0].ID)
	assert.Equal(t, "advanced-techniques", lessons[len(lessons)-1].ID)
}

func TestNew_DuplicateIDReplacesInPlace(t *testing.T) {
	c := New([]domain.Lesson{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
		{ID: "a", Title: "override"},
	})

	assert.Equal(t, 2, c.Len())
	got, ok := c.Lesson("a")
	require.True(t, ok)
	assert.Equal(t, "override", got.Title)
	assert.Equal(t, "a", c.Lessons()[0].ID, "override keeps original position")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	good := `
id: custom-lesson
title: Custom Lesson
description: A team-specific lesson
phase: Development
difficulty: intermediate
prerequisites: [bmad-fundamentals]
tags: [development, workflow]
estimated_duration: 20
real_project_integration: true
exercises:
  - id: custom-exercise
    title: Custom Exercise
    type: workflow-simulation
    difficulty: intermediate
    estimated_time: 10
`
	bad := `
id: broken-lesson
title: Broken Lesson
phase: NotAPhase
difficulty: intermediate
`
	garbage := "{{{ not yaml"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "10-custom.yml"), []byte(good), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20-broken.yml"), []byte(bad), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "30-garbage.yaml"), []byte(garbage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	c, warnings, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len(), "bad entries are skipped, not fatal")
	assert.Len(t, warnings, 2)

	lesson, ok := c.Lesson("custom-lesson")
	require.True(t, ok)
	assert.Equal(t, domain.PhaseDevelopment, lesson.Phase)
	assert.True(t, lesson.RealProjectIntegration)
	require.Len(t, lesson.Exercises, 1)
	assert.Equal(t, domain.ExerciseWorkflowSimulation, lesson.Exercises[0].Type)
}

func TestLoadDir_MissingDirIsEmptyCatalog(t *testing.T) {
	c, warnings, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, warnings)
}

func TestMerge_OverridesByID(t *testing.T) {
	base := Builtin()
	extra := New([]domain.Lesson{
		{ID: "project-setup", Title: "Project Setup (team edition)", Phase: domain.PhaseGeneral, Difficulty: domain.DifficultyBeginner},
		{ID: "team-onboarding", Title: "Team Onboarding", Phase: domain.PhaseGeneral, Difficulty: domain.DifficultyBeginner},
	})

	merged := Merge(base, extra)

	assert.Equal(t, base.Len()+1, merged.Len())
	got, ok := merged.Lesson("project-setup")
	require.True(t, ok)
	assert.Equal(t, "Project Setup (team edition)", got.Title)
	assert.Equal(t, merged.Lessons()[1].ID, "project-setup", "override keeps base position")
}
