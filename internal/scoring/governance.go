package scoring

import (
	"math"

	"github.com/civium/civium/internal/database/types"
)

// Baseline values reported when an organization has no data for a metric.
const (
	defaultTransparency   = 85
	defaultAccountability = 78
	defaultParticipation  = 50
	defaultTrust          = 85
)

// GovernanceInputs aggregates the raw counts an organization's governance
// metrics are computed from.
type GovernanceInputs struct {
	PostCount         int64
	PublicPostCount   int64
	ProjectCount      int64
	CompletedProjects int64
	ActiveMembers     int64
	FollowerCount     int64
	RatingCount       int64
	RatingAverage     float64
}

// Governance computes the four independent display-only percentages for an
// organization. Each metric rounds to the nearest integer and falls back to
// its baseline when the denominator is zero. These metrics are distinct from
// the trust score and are never persisted.
func Governance(in GovernanceInputs) types.GovernanceMetrics {
	metrics := types.GovernanceMetrics{
		Transparency:   defaultTransparency,
		Accountability: defaultAccountability,
		Participation:  defaultParticipation,
		Trust:          defaultTrust,
	}

	if in.PostCount > 0 {
		metrics.Transparency = roundPercentage(float64(in.PublicPostCount) / float64(in.PostCount) * 100)
	}

	if in.ProjectCount > 0 {
		metrics.Accountability = roundPercentage(float64(in.CompletedProjects) / float64(in.ProjectCount) * 100)
	}

	if in.FollowerCount > 0 {
		participation := float64(in.ActiveMembers) / float64(in.FollowerCount) * 100
		metrics.Participation = roundPercentage(math.Min(participation, 100))
	}

	if in.RatingCount > 0 {
		metrics.Trust = roundPercentage(in.RatingAverage * 20)
	}

	return metrics
}

// roundPercentage rounds to the nearest integer and bounds the result to
// [0, 100] as the final step.
func roundPercentage(v float64) int {
	return clampInt(int64(math.Round(v)), 0, 100)
}
