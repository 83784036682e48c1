package scoring_test

import (
	"testing"

	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestGovernance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   scoring.GovernanceInputs
		want types.GovernanceMetrics
	}{
		{
			name: "no data yields the baseline metrics",
			in:   scoring.GovernanceInputs{},
			want: types.GovernanceMetrics{
				Transparency:   85,
				Accountability: 78,
				Participation:  50,
				Trust:          85,
			},
		},
		{
			name: "all metrics computed from data",
			in: scoring.GovernanceInputs{
				PostCount:         10,
				PublicPostCount:   9,
				ProjectCount:      4,
				CompletedProjects: 3,
				ActiveMembers:     25,
				FollowerCount:     100,
				RatingCount:       12,
				RatingAverage:     4.2,
			},
			want: types.GovernanceMetrics{
				Transparency:   90,
				Accountability: 75,
				Participation:  25,
				Trust:          84,
			},
		},
		{
			name: "metrics round to the nearest integer",
			in: scoring.GovernanceInputs{
				PostCount:       3,
				PublicPostCount: 2, // 66.66 -> 67
				ProjectCount:    3,
				CompletedProjects: 1, // 33.33 -> 33
			},
			want: types.GovernanceMetrics{
				Transparency:   67,
				Accountability: 33,
				Participation:  50,
				Trust:          85,
			},
		},
		{
			name: "participation is capped at one hundred",
			in: scoring.GovernanceInputs{
				ActiveMembers: 500,
				FollowerCount: 10,
			},
			want: types.GovernanceMetrics{
				Transparency:   85,
				Accountability: 78,
				Participation:  100,
				Trust:          85,
			},
		},
		{
			name: "trust metric scales the average rating",
			in: scoring.GovernanceInputs{
				RatingCount:   1,
				RatingAverage: 5,
			},
			want: types.GovernanceMetrics{
				Transparency:   85,
				Accountability: 78,
				Participation:  50,
				Trust:          100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scoring.Governance(tt.in))
		})
	}
}
