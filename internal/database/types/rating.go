package types

import (
	"errors"
	"time"
)

var ErrInvalidRatingScore = errors.New("rating score must be between 1 and 5")

// Rating represents a member's rating of an organization in one category.
// The composite key (rater, organization, category) guarantees at most one
// rating per rater per organization per category; a second submission
// overwrites the first.
type Rating struct {
	RaterID        uint64    `bun:",pk"      json:"raterId"`
	OrganizationID uint64    `bun:",pk"      json:"organizationId"`
	Category       string    `bun:",pk"      json:"category"`
	Score          int       `bun:",notnull" json:"score"`
	CreatedAt      time.Time `bun:",notnull" json:"createdAt"`
	UpdatedAt      time.Time `bun:",notnull" json:"updatedAt"`
}

// RatingStats aggregates an organization's ratings for scoring.
type RatingStats struct {
	Count   int64   `bun:"count"   json:"count"`
	Average float64 `bun:"average" json:"average"`
}
