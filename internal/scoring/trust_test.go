package scoring_test

import (
	"testing"

	"github.com/civium/civium/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestOrganizationTrust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   scoring.TrustInputs
		want float64
	}{
		{
			name: "no data at all",
			in:   scoring.TrustInputs{},
			want: 0,
		},
		{
			name: "perfect scores across all components",
			in: scoring.TrustInputs{
				RatingCount:          10,
				RatingAverage:        5,
				InteractionCount:     20,
				PositiveInteractions: 20,
				ResponseCount:        4,
				AnsweredResponses:    4,
			},
			want: 100,
		},
		{
			name: "rating component only",
			in: scoring.TrustInputs{
				RatingCount:   3,
				RatingAverage: 4, // 4/5 * 40
			},
			want: 32,
		},
		{
			name: "interaction component only",
			in: scoring.TrustInputs{
				InteractionCount:     10,
				PositiveInteractions: 5, // 0.5 * 30
			},
			want: 15,
		},
		{
			name: "response component only",
			in: scoring.TrustInputs{
				ResponseCount:     8,
				AnsweredResponses: 2, // 0.25 * 30
			},
			want: 7.5,
		},
		{
			name: "mixed components rounded to one decimal",
			in: scoring.TrustInputs{
				RatingCount:          6,
				RatingAverage:        3.5, // 28
				InteractionCount:     3,
				PositiveInteractions: 1, // 10
				ResponseCount:        3,
				AnsweredResponses:    2, // 20
			},
			want: 58,
		},
		{
			name: "malformed average above five is clamped before weighting",
			in: scoring.TrustInputs{
				RatingCount:   2,
				RatingAverage: 9.7,
			},
			want: 40,
		},
		{
			name: "negative average is clamped to zero",
			in: scoring.TrustInputs{
				RatingCount:   2,
				RatingAverage: -1,
			},
			want: 0,
		},
		{
			name: "positive count above total cannot exceed the component weight",
			in: scoring.TrustInputs{
				InteractionCount:     5,
				PositiveInteractions: 50,
			},
			want: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scoring.OrganizationTrust(tt.in)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, scoring.MaxTrustScore)
		})
	}
}

func TestOrganizationTrustIdempotent(t *testing.T) {
	t.Parallel()

	in := scoring.TrustInputs{
		RatingCount:          17,
		RatingAverage:        3.823,
		InteractionCount:     311,
		PositiveInteractions: 204,
		ResponseCount:        9,
		AnsweredResponses:    6,
	}

	first := scoring.OrganizationTrust(in)
	for range 10 {
		assert.InDelta(t, first, scoring.OrganizationTrust(in), 0)
	}
}
