package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorland/bmadcoach/internal/app"
)

func TestRank_DescendingByScore(t *testing.T) {
	candidates := []app.Suggestion{
		{ID: "low", RelevanceScore: 40},
		{ID: "high", RelevanceScore: 95},
		{ID: "mid", RelevanceScore: 70},
	}

	ranked := Rank(candidates, DefaultPolicy())

	assert.Equal(t, []string{"high", "mid", "low"}, suggestionIDs(ranked))
}

func TestRank_TiesKeepDeclarationOrder(t *testing.T) {
	candidates := []app.Suggestion{
		{ID: "first", RelevanceScore: 80},
		{ID: "second", RelevanceScore: 80},
		{ID: "third", RelevanceScore: 80},
	}

	ranked := Rank(candidates, DefaultPolicy())

	assert.Equal(t, []string{"first", "second", "third"}, suggestionIDs(ranked))
}

func TestRank_TruncatesToTopK(t *testing.T) {
	var candidates []app.Suggestion
	for i := 0; i < 25; i++ {
		candidates = append(candidates, app.Suggestion{
			ID:             fmt.Sprintf("s-%02d", i),
			RelevanceScore: i * 4,
		})
	}

	ranked := Rank(candidates, DefaultPolicy())

	require.Len(t, ranked, 10)
	assert.Equal(t, "s-24", ranked[0].ID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	candidates := []app.Suggestion{
		{ID: "a", RelevanceScore: 10},
		{ID: "b", RelevanceScore: 90},
	}

	Rank(candidates, DefaultPolicy())

	assert.Equal(t, "a", candidates[0].ID)
}
