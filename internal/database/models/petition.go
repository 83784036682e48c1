package models

import (
	"context"
	"fmt"

	"github.com/civium/civium/internal/database/dbretry"
	"github.com/civium/civium/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PetitionModel handles database operations for petitions and their
// response records.
type PetitionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPetition creates a new petition model.
func NewPetition(db *bun.DB, logger *zap.Logger) *PetitionModel {
	return &PetitionModel{
		db:     db,
		logger: logger.Named("db_petition"),
	}
}

// GetResponseStats counts an organization's received petition response
// records, total and answered, for the response-rate trust component. A
// record is answered when it carries non-empty response text.
func (r *PetitionModel) GetResponseStats(ctx context.Context, orgID uint64) (total, answered int64, err error) {
	type responseCounts struct {
		Total    int64 `bun:"total"`
		Answered int64 `bun:"answered"`
	}

	counts, err := dbretry.Operation(ctx, func(ctx context.Context) (*responseCounts, error) {
		var counts responseCounts

		err := r.db.NewSelect().
			Model((*types.PetitionResponse)(nil)).
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE response_text IS NOT NULL AND response_text != '') AS answered").
			Where("organization_id = ?", orgID).
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count responses for organization %d: %w", orgID, err)
		}

		return &counts, nil
	})
	if err != nil {
		return 0, 0, err
	}

	return counts.Total, counts.Answered, nil
}
