package scoring

import (
	"math"

	"github.com/civium/civium/internal/database/types/enum"
)

// MaxTrustRating is the upper bound of the star-equivalent trust rating.
const MaxTrustRating = 5.0

// TrustView is the display-ready derivation of a reputation score: a bounded
// star rating, a named level with its display color, and a badge symbol.
type TrustView struct {
	Rating float64         `json:"rating"`
	Level  enum.TrustLevel `json:"level"`
	Color  string          `json:"color"`
	Badge  string          `json:"badge"`
}

// levelThreshold maps a reputation breakpoint to its level, color, and badge.
type levelThreshold struct {
	min   int
	level enum.TrustLevel
	color string
	badge string
}

// Ordered highest first; the first qualifying threshold wins. The zero
// threshold guarantees every score resolves to a level.
var levelThresholds = []levelThreshold{
	{8000, enum.TrustLevelChampion, "#FFD700", "🏆"},
	{5000, enum.TrustLevelLeader, "#9C27B0", "⭐"},
	{2500, enum.TrustLevelActivist, "#FF5722", "🔥"},
	{1000, enum.TrustLevelContributor, "#2196F3", "💪"},
	{500, enum.TrustLevelParticipant, "#4CAF50", "👍"},
	{0, enum.TrustLevelNewcomer, "#9E9E9E", "🌱"},
}

// DeriveTrustView converts a reputation score into its display views. Pure
// function of the score; called on every render, never cached.
func DeriveTrustView(score int) TrustView {
	rating := clampFloat(float64(score)/float64(MaxReputation)*MaxTrustRating, 0, MaxTrustRating)
	rating = math.Round(rating*100) / 100

	// Negative scores resolve to the lowest level.
	floor := levelThresholds[len(levelThresholds)-1]
	view := TrustView{
		Rating: rating,
		Level:  floor.level,
		Color:  floor.color,
		Badge:  floor.badge,
	}

	for _, threshold := range levelThresholds {
		if score >= threshold.min {
			view.Level = threshold.level
			view.Color = threshold.color
			view.Badge = threshold.badge

			break
		}
	}

	return view
}
