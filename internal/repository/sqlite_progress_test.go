package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorland/bmadcoach/internal/domain"
	"github.com/jmorland/bmadcoach/internal/testutil"
)

func TestProgressRepo_EmptyStoreYieldsDefaults(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))

	progress, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Empty(t, progress.CompletedLessons)
	assert.Equal(t, 0, progress.SkillLevel(domain.SkillWorkflowManagement))
	assert.Nil(t, progress.LastActive)
}

func TestProgressRepo_MarkCompleted(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.MarkCompleted(ctx, "bmad-fundamentals", at))
	require.NoError(t, repo.MarkCompleted(ctx, "project-setup", at.Add(time.Hour)))
	// completing the same lesson twice is a no-op
	require.NoError(t, repo.MarkCompleted(ctx, "bmad-fundamentals", at.Add(2*time.Hour)))

	progress, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bmad-fundamentals", "project-setup"}, progress.CompletedLessons)
}

func TestProgressRepo_BumpSkill(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.BumpSkill(ctx, domain.SkillAgentCoordination, 10))
	require.NoError(t, repo.BumpSkill(ctx, domain.SkillAgentCoordination, 5))

	progress, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, progress.SkillLevel(domain.SkillAgentCoordination))
}

func TestProgressRepo_BumpSkillClampsAt100(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.BumpSkill(ctx, domain.SkillQualityAssurance, 10))
	}

	progress, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.SkillLevel(domain.SkillQualityAssurance))
}

func TestProgressRepo_Touch(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Touch(ctx, at))
	require.NoError(t, repo.Touch(ctx, at.Add(time.Hour)))

	progress, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, progress.LastActive)
	assert.Equal(t, at.Add(time.Hour), progress.LastActive.UTC())
}
