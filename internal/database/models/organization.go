package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/civium/civium/internal/database/dbretry"
	"github.com/civium/civium/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// OrganizationModel handles database operations for organizations.
type OrganizationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewOrganization creates a new organization model.
func NewOrganization(db *bun.DB, logger *zap.Logger) *OrganizationModel {
	return &OrganizationModel{
		db:     db,
		logger: logger.Named("db_organization"),
	}
}

// GetOrganization retrieves an organization by ID.
func (r *OrganizationModel) GetOrganization(ctx context.Context, orgID uint64) (*types.Organization, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Organization, error) {
		var org types.Organization

		err := r.db.NewSelect().
			Model(&org).
			Where("id = ?", orgID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrOrganizationNotFound
			}

			return nil, fmt.Errorf("failed to get organization %d: %w", orgID, err)
		}

		return &org, nil
	})
}

// GetAllOrganizationIDs retrieves the IDs of every organization.
func (r *OrganizationModel) GetAllOrganizationIDs(ctx context.Context) ([]uint64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]uint64, error) {
		var ids []uint64

		err := r.db.NewSelect().
			Model((*types.Organization)(nil)).
			Column("id").
			Order("id ASC").
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get organization IDs: %w", err)
		}

		return ids, nil
	})
}

// GetAllOrganizations retrieves every organization ordered by ID.
func (r *OrganizationModel) GetAllOrganizations(ctx context.Context) ([]*types.Organization, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Organization, error) {
		var organizations []*types.Organization

		err := r.db.NewSelect().
			Model(&organizations).
			Order("id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get all organizations: %w", err)
		}

		return organizations, nil
	})
}

// UpdateTrustScore writes a freshly computed trust score onto the
// organization record, bumping the version counter and the computed-at
// marker. The write is last-writer-wins; callers that need serialization go
// through the engine dispatcher.
func (r *OrganizationModel) UpdateTrustScore(ctx context.Context, orgID uint64, score float64) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := r.db.NewUpdate().
			Model((*types.Organization)(nil)).
			Set("trust_score = ?", score).
			Set("trust_version = trust_version + 1").
			Set("trust_computed_at = ?", time.Now().UTC()).
			Where("id = ?", orgID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update trust score for organization %d: %w", orgID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check trust score update result: %w", err)
		}

		if rows == 0 {
			return types.ErrOrganizationNotFound
		}

		r.logger.Debug("Updated trust score",
			zap.Uint64("organizationID", orgID),
			zap.Float64("score", score))

		return nil
	})
}

// CountPeersAbove counts organizations with a strictly greater trust score
// than the given one, optionally scoped to a region or category. The count
// plus one is the subject's competition rank in that scope.
func (r *OrganizationModel) CountPeersAbove(ctx context.Context, score float64, region, category string) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		query := r.db.NewSelect().
			Model((*types.Organization)(nil)).
			Where("trust_score > ?", score)

		if region != "" {
			query = query.Where("region = ?", region)
		}

		if category != "" {
			query = query.Where("category = ?", category)
		}

		count, err := query.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count peers above score %.1f: %w", score, err)
		}

		return count, nil
	})
}

// UpdateRanks writes all three rank fields onto the organization record along
// with the computed-at marker. The ranks are snapshots of the trust scores
// visible at computation time.
func (r *OrganizationModel) UpdateRanks(ctx context.Context, orgID uint64, ranks *types.OrganizationRanks) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := r.db.NewUpdate().
			Model((*types.Organization)(nil)).
			Set("national_rank = ?", ranks.National).
			Set("regional_rank = ?", ranks.Regional).
			Set("category_rank = ?", ranks.Category).
			Set("ranks_computed_at = ?", time.Now().UTC()).
			Where("id = ?", orgID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update ranks for organization %d: %w", orgID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rank update result: %w", err)
		}

		if rows == 0 {
			return types.ErrOrganizationNotFound
		}

		return nil
	})
}

// CountPosts counts an organization's content items, total and publicly
// visible, for the transparency metric.
func (r *OrganizationModel) CountPosts(ctx context.Context, orgID uint64) (total, public int64, err error) {
	type postCounts struct {
		Total  int64 `bun:"total"`
		Public int64 `bun:"public"`
	}

	counts, err := dbretry.Operation(ctx, func(ctx context.Context) (*postCounts, error) {
		var counts postCounts

		err := r.db.NewSelect().
			Model((*types.OrganizationPost)(nil)).
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE is_public) AS public").
			Where("organization_id = ?", orgID).
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count posts for organization %d: %w", orgID, err)
		}

		return &counts, nil
	})
	if err != nil {
		return 0, 0, err
	}

	return counts.Total, counts.Public, nil
}

// CountProjects counts an organization's projects, total and completed, for
// the accountability metric.
func (r *OrganizationModel) CountProjects(ctx context.Context, orgID uint64) (total, completed int64, err error) {
	type projectCounts struct {
		Total     int64 `bun:"total"`
		Completed int64 `bun:"completed"`
	}

	counts, err := dbretry.Operation(ctx, func(ctx context.Context) (*projectCounts, error) {
		var counts projectCounts

		err := r.db.NewSelect().
			Model((*types.Project)(nil)).
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE completed) AS completed").
			Where("organization_id = ?", orgID).
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count projects for organization %d: %w", orgID, err)
		}

		return &counts, nil
	})
	if err != nil {
		return 0, 0, err
	}

	return counts.Total, counts.Completed, nil
}
