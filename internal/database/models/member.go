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

// MemberModel handles database operations for members.
type MemberModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewMember creates a new member model.
func NewMember(db *bun.DB, logger *zap.Logger) *MemberModel {
	return &MemberModel{
		db:     db,
		logger: logger.Named("db_member"),
	}
}

// GetMember retrieves a member by ID.
func (r *MemberModel) GetMember(ctx context.Context, memberID uint64) (*types.Member, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Member, error) {
		var member types.Member

		err := r.db.NewSelect().
			Model(&member).
			Where("id = ?", memberID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrMemberNotFound
			}

			return nil, fmt.Errorf("failed to get member %d: %w", memberID, err)
		}

		return &member, nil
	})
}

// GetActivity retrieves the full activity snapshot a member's reputation is
// computed from. The snapshot is fetched completely or not at all; a partial
// snapshot is never returned.
func (r *MemberModel) GetActivity(ctx context.Context, memberID uint64) (*types.MemberActivity, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.MemberActivity, error) {
		var tallies []*types.PetitionTally

		err := r.db.NewSelect().
			Model((*types.Petition)(nil)).
			Column("id", "votes_for", "votes_against").
			Where("author_id = ?", memberID).
			Scan(ctx, &tallies)
		if err != nil {
			return nil, fmt.Errorf("failed to get petition tallies for member %d: %w", memberID, err)
		}

		comments, err := r.db.NewSelect().
			Model((*types.Comment)(nil)).
			Where("author_id = ?", memberID).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count comments for member %d: %w", memberID, err)
		}

		votes, err := r.db.NewSelect().
			Model((*types.PetitionVote)(nil)).
			Where("member_id = ?", memberID).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count votes for member %d: %w", memberID, err)
		}

		return &types.MemberActivity{
			Petitions:        tallies,
			CommentsAuthored: int64(comments),
			VotesCast:        int64(votes),
		}, nil
	})
}

// UpdateReputationScore writes a freshly computed reputation score onto the
// member record, bumping the version counter and the computed-at marker.
// Only the cached fields are touched.
func (r *MemberModel) UpdateReputationScore(ctx context.Context, memberID uint64, score int) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := r.db.NewUpdate().
			Model((*types.Member)(nil)).
			Set("reputation_score = ?", score).
			Set("reputation_version = reputation_version + 1").
			Set("reputation_computed_at = ?", time.Now().UTC()).
			Where("id = ?", memberID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update reputation score for member %d: %w", memberID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check reputation update result: %w", err)
		}

		if rows == 0 {
			return types.ErrMemberNotFound
		}

		r.logger.Debug("Updated reputation score",
			zap.Uint64("memberID", memberID),
			zap.Int("score", score))

		return nil
	})
}

// GetTopMembers retrieves members ordered by reputation score descending.
// Ties are broken by member ID for a stable ordering.
func (r *MemberModel) GetTopMembers(ctx context.Context, limit int) ([]*types.Member, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Member, error) {
		var members []*types.Member

		err := r.db.NewSelect().
			Model(&members).
			Order("reputation_score DESC", "id ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get top members: %w", err)
		}

		return members, nil
	})
}

// GetAllMembers retrieves every member ordered by ID.
func (r *MemberModel) GetAllMembers(ctx context.Context) ([]*types.Member, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Member, error) {
		var members []*types.Member

		err := r.db.NewSelect().
			Model(&members).
			Order("id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get all members: %w", err)
		}

		return members, nil
	})
}
