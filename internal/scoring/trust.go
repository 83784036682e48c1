package scoring

import "math"

// MaxTrustScore is the upper bound of an organization's trust score.
const MaxTrustScore = 100.0

// Component weights of the trust score. They sum to MaxTrustScore, so the
// final clamp only matters for malformed upstream data.
const (
	ratingWeight      = 40.0
	interactionWeight = 30.0
	responseWeight    = 30.0
)

// TrustInputs aggregates the raw counts an organization's trust score is
// computed from.
type TrustInputs struct {
	RatingCount          int64
	RatingAverage        float64
	InteractionCount     int64
	PositiveInteractions int64
	ResponseCount        int64
	AnsweredResponses    int64
}

// OrganizationTrust computes the composite trust score from three
// independently weighted components: average rating, positive interaction
// share, and petition response rate. A component with no underlying data
// contributes zero. The result is rounded to one decimal and defensively
// clamped to [0, MaxTrustScore] as the final step.
func OrganizationTrust(in TrustInputs) float64 {
	var score float64

	if in.RatingCount > 0 {
		// Ratings outside 1-5 are rejected upstream; still bound the
		// average so a malformed row cannot push a component past its weight.
		average := clampFloat(in.RatingAverage, 0, 5)
		score += average / 5.0 * ratingWeight
	}

	if in.InteractionCount > 0 {
		positive := clampFloat(float64(in.PositiveInteractions), 0, float64(in.InteractionCount))
		score += positive / float64(in.InteractionCount) * interactionWeight
	}

	if in.ResponseCount > 0 {
		answered := clampFloat(float64(in.AnsweredResponses), 0, float64(in.ResponseCount))
		score += answered / float64(in.ResponseCount) * responseWeight
	}

	score = math.Round(score*10) / 10

	return clampFloat(score, 0, MaxTrustScore)
}
