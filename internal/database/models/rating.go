package models

import (
	"context"
	"fmt"
	"time"

	"github.com/civium/civium/internal/database/dbretry"
	"github.com/civium/civium/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RatingModel handles database operations for organization ratings.
type RatingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRating creates a new rating model.
func NewRating(db *bun.DB, logger *zap.Logger) *RatingModel {
	return &RatingModel{
		db:     db,
		logger: logger.Named("db_rating"),
	}
}

// Upsert inserts or updates a rating. The composite key guarantees at most
// one rating per rater per organization per category; resubmission
// overwrites the score, never creates a duplicate row.
func (r *RatingModel) Upsert(ctx context.Context, rating *types.Rating) error {
	if rating.Score < 1 || rating.Score > 5 {
		return types.ErrInvalidRatingScore
	}

	// Set timestamps
	now := time.Now().UTC()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(rating).
			On("CONFLICT (rater_id, organization_id, category) DO UPDATE").
			Set("score = EXCLUDED.score").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}

		return nil
	})
}

// GetStats aggregates the count and average score of an organization's
// ratings across all categories.
func (r *RatingModel) GetStats(ctx context.Context, orgID uint64) (*types.RatingStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.RatingStats, error) {
		var stats types.RatingStats

		err := r.db.NewSelect().
			Model((*types.Rating)(nil)).
			ColumnExpr("COUNT(*) AS count").
			ColumnExpr("COALESCE(AVG(score), 0) AS average").
			Where("organization_id = ?", orgID).
			Scan(ctx, &stats)
		if err != nil {
			return nil, fmt.Errorf("failed to get rating stats for organization %d: %w", orgID, err)
		}

		return &stats, nil
	})
}
