package service

import (
	"context"
	"fmt"

	"github.com/civium/civium/internal/database/models"
	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/scoring"
	"go.uber.org/zap"
)

// ReputationService handles member reputation scoring.
type ReputationService struct {
	member *models.MemberModel
	logger *zap.Logger
}

// NewReputation creates a new reputation service.
func NewReputation(member *models.MemberModel, logger *zap.Logger) *ReputationService {
	return &ReputationService{
		member: member,
		logger: logger.Named("reputation_service"),
	}
}

// ComputeMemberReputation recomputes a member's reputation score from their
// full activity snapshot and persists it onto the member record. The
// computation is idempotent; identical inputs always produce identical
// scores. When the snapshot cannot be fetched, nothing is written and the
// cached value stays untouched. When only the persist fails, the computed
// score is still returned alongside the error so callers can display it.
func (s *ReputationService) ComputeMemberReputation(ctx context.Context, memberID uint64) (int, error) {
	if memberID == 0 {
		return 0, types.ErrInvalidMemberID
	}

	// Surface not-found before doing any work
	if _, err := s.member.GetMember(ctx, memberID); err != nil {
		return 0, err
	}

	activity, err := s.member.GetActivity(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch activity snapshot: %w", err)
	}

	score := scoring.MemberReputation(activity)

	if err := s.member.UpdateReputationScore(ctx, memberID, score); err != nil {
		return score, fmt.Errorf("failed to persist reputation score: %w", err)
	}

	s.logger.Debug("Recomputed member reputation",
		zap.Uint64("memberID", memberID),
		zap.Int("score", score),
		zap.Int("petitions", len(activity.Petitions)),
		zap.Int64("comments", activity.CommentsAuthored),
		zap.Int64("votesCast", activity.VotesCast))

	return score, nil
}
