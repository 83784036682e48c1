package scoring_test

import (
	"testing"

	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestMemberReputation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		activity *types.MemberActivity
		want     int
	}{
		{
			name:     "no activity",
			activity: &types.MemberActivity{},
			want:     0,
		},
		{
			name: "single fully supported petition",
			activity: &types.MemberActivity{
				Petitions: []*types.PetitionTally{
					{VotesFor: 10, VotesAgainst: 0},
				},
			},
			// 100 support + 10 petition bonus
			want: 110,
		},
		{
			name: "support ratio is floored",
			activity: &types.MemberActivity{
				Petitions: []*types.PetitionTally{
					{VotesFor: 2, VotesAgainst: 1}, // 66.66... -> 66
				},
			},
			want: 76,
		},
		{
			name: "zero-vote petition contributes only the authorship bonus",
			activity: &types.MemberActivity{
				Petitions: []*types.PetitionTally{
					{VotesFor: 0, VotesAgainst: 0},
				},
			},
			want: 10,
		},
		{
			name: "comments and votes weighted",
			activity: &types.MemberActivity{
				CommentsAuthored: 4,
				VotesCast:        7,
			},
			want: 19,
		},
		{
			name: "all inputs combined",
			activity: &types.MemberActivity{
				Petitions: []*types.PetitionTally{
					{VotesFor: 3, VotesAgainst: 1}, // 75
					{VotesFor: 0, VotesAgainst: 5}, // 0
				},
				CommentsAuthored: 10,
				VotesCast:        5,
			},
			// 75 + 0 + 30 + 5 + 20
			want: 130,
		},
		{
			name: "clamped to upper bound",
			activity: &types.MemberActivity{
				CommentsAuthored: 5000,
				VotesCast:        100000,
			},
			want: scoring.MaxReputation,
		},
		{
			name: "negative counts clamp to zero",
			activity: &types.MemberActivity{
				CommentsAuthored: -50,
				VotesCast:        -10,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scoring.MemberReputation(tt.activity))
		})
	}
}

func TestMemberReputationIdempotent(t *testing.T) {
	t.Parallel()

	activity := &types.MemberActivity{
		Petitions: []*types.PetitionTally{
			{VotesFor: 42, VotesAgainst: 17},
		},
		CommentsAuthored: 13,
		VotesCast:        99,
	}

	first := scoring.MemberReputation(activity)
	for range 10 {
		assert.Equal(t, first, scoring.MemberReputation(activity))
	}
}

func TestMemberReputationMonotonic(t *testing.T) {
	t.Parallel()

	base := &types.MemberActivity{
		Petitions: []*types.PetitionTally{
			{VotesFor: 5, VotesAgainst: 5},
		},
		CommentsAuthored: 3,
		VotesCast:        8,
	}
	baseScore := scoring.MemberReputation(base)

	moreComments := *base
	moreComments.CommentsAuthored++
	assert.GreaterOrEqual(t, scoring.MemberReputation(&moreComments), baseScore)

	moreVotes := *base
	moreVotes.VotesCast++
	assert.GreaterOrEqual(t, scoring.MemberReputation(&moreVotes), baseScore)

	higherSupport := &types.MemberActivity{
		Petitions: []*types.PetitionTally{
			{VotesFor: 6, VotesAgainst: 4},
		},
		CommentsAuthored: base.CommentsAuthored,
		VotesCast:        base.VotesCast,
	}
	assert.GreaterOrEqual(t, scoring.MemberReputation(higherSupport), baseScore)
}
