package models

import (
	"context"
	"fmt"
	"time"

	"github.com/civium/civium/internal/database/dbretry"
	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// InteractionModel handles database operations for interactions.
type InteractionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewInteraction creates a new interaction model.
func NewInteraction(db *bun.DB, logger *zap.Logger) *InteractionModel {
	return &InteractionModel{
		db:     db,
		logger: logger.Named("db_interaction"),
	}
}

// Insert appends a new interaction event. Interactions are append-only.
func (r *InteractionModel) Insert(ctx context.Context, interaction *types.Interaction) error {
	if interaction.OccurredAt.IsZero() {
		interaction.OccurredAt = time.Now().UTC()
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(interaction).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert interaction: %w", err)
		}

		return nil
	})
}

// GetStats aggregates an organization's interaction counts, total and
// positive, for the trust score.
func (r *InteractionModel) GetStats(ctx context.Context, orgID uint64) (*types.InteractionStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.InteractionStats, error) {
		var stats types.InteractionStats

		err := r.db.NewSelect().
			Model((*types.Interaction)(nil)).
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE type IN (?)) AS positive",
				bun.In(positiveInteractionTypes())).
			Where("organization_id = ?", orgID).
			Scan(ctx, &stats)
		if err != nil {
			return nil, fmt.Errorf("failed to get interaction stats for organization %d: %w", orgID, err)
		}

		return &stats, nil
	})
}

// CountRecentUniqueMembers counts the distinct members who interacted with an
// organization since the given time, for the participation metric.
func (r *InteractionModel) CountRecentUniqueMembers(ctx context.Context, orgID uint64, since time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		var count int64

		err := r.db.NewSelect().
			Model((*types.Interaction)(nil)).
			ColumnExpr("COUNT(DISTINCT member_id)").
			Where("organization_id = ?", orgID).
			Where("occurred_at >= ?", since).
			Scan(ctx, &count)
		if err != nil {
			return 0, fmt.Errorf("failed to count recent members for organization %d: %w", orgID, err)
		}

		return count, nil
	})
}

// positiveInteractionTypes lists the interaction types counted toward the
// positive trust component.
func positiveInteractionTypes() []enum.InteractionType {
	var positive []enum.InteractionType

	for _, t := range enum.InteractionTypeValues() {
		if t.IsPositive() {
			positive = append(positive, t)
		}
	}

	return positive
}
