package engine

import (
	"sort"

	"github.com/jmorland/bmadcoach/internal/app"
)

// Rank sorts suggestions descending by relevance score and truncates to
// the policy's top-K bound. The sort is stable and the input arrives in
// catalog declaration order, so equal scores keep their declaration order
// and repeated calls with identical inputs produce identical output.
func Rank(candidates []app.Suggestion, pol Policy) []app.Suggestion {
	ranked := make([]app.Suggestion, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	if pol.TopK > 0 && len(ranked) > pol.TopK {
		ranked = ranked[:pol.TopK]
	}
	return ranked
}
