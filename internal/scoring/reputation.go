// Package scoring holds the pure score computations of the engine. Nothing
// in this package touches the database; every function is deterministic in
// its inputs so recomputation is idempotent by construction.
package scoring

import (
	"github.com/civium/civium/internal/database/types"
)

// MaxReputation is the upper bound of a member's reputation score.
const MaxReputation = 10000

// Weights applied to a member's raw activity counts.
const (
	commentWeight  = 3
	voteWeight     = 1
	petitionWeight = 10
)

// MemberReputation converts a member's activity snapshot into a reputation
// score. Each authored petition contributes floor(support_ratio * 100) when
// it has at least one vote; petitions with zero total votes contribute no
// support component. Comments, votes cast, and petitions authored are
// weighted on top.
// Clamping to [0, MaxReputation] is the final step.
func MemberReputation(activity *types.MemberActivity) int {
	var total int64

	for _, petition := range activity.Petitions {
		votes := petition.VotesFor + petition.VotesAgainst
		if votes <= 0 || petition.VotesFor <= 0 {
			continue
		}

		total += int64(float64(petition.VotesFor) / float64(votes) * 100)
	}

	total += commentWeight * activity.CommentsAuthored
	total += voteWeight * activity.VotesCast
	total += petitionWeight * int64(len(activity.Petitions))

	return clampInt(total, 0, MaxReputation)
}

// clampInt bounds v to [lo, hi].
func clampInt(v int64, lo, hi int) int {
	if v < int64(lo) {
		return lo
	}

	if v > int64(hi) {
		return hi
	}

	return int(v)
}

// clampFloat bounds v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
