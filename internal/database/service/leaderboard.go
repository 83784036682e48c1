package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/civium/civium/internal/database/models"
	"github.com/civium/civium/internal/database/types"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// DefaultLeaderboardLimit is the result-set size used when the caller does
// not specify one.
const DefaultLeaderboardLimit = 100

// Medal badges for the top three leaderboard positions.
const (
	badgeGold   = "🥇"
	badgeSilver = "🥈"
	badgeBronze = "🥉"
)

// DisplayNamePolicy decides the presentation-safe name shown for a member on
// the leaderboard. The anonymity rules live outside the engine; the
// leaderboard never reads a member's name directly.
type DisplayNamePolicy interface {
	DisplayName(member *types.Member) string
}

// PublicNamePolicy is the pass-through policy for deployments without
// anonymization: the member's chosen display name, falling back to the
// username.
type PublicNamePolicy struct{}

// DisplayName returns the member's display name or username.
func (PublicNamePolicy) DisplayName(member *types.Member) string {
	if member.DisplayName != "" {
		return member.DisplayName
	}

	return member.Username
}

// LeaderboardService assembles the member reputation leaderboard.
type LeaderboardService struct {
	member   *models.MemberModel
	cache    rueidis.Client
	policy   DisplayNamePolicy
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewLeaderboard creates a new leaderboard service. The cache client may be
// nil, in which case every call hits the database.
func NewLeaderboard(
	member *models.MemberModel,
	cache rueidis.Client,
	policy DisplayNamePolicy,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *LeaderboardService {
	if policy == nil {
		policy = PublicNamePolicy{}
	}

	return &LeaderboardService{
		member:   member,
		cache:    cache,
		policy:   policy,
		cacheTTL: cacheTTL,
		logger:   logger.Named("leaderboard_service"),
	}
}

// GetLeaderboard returns the top members ordered strictly by reputation
// score descending. Tied scores share a competition rank; positions 1-3
// carry medal badges, the rest a plain ordinal. Read-only against the store;
// results are cached for the configured TTL.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]*types.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	if entries, ok := s.cachedEntries(ctx, limit); ok {
		return entries, nil
	}

	members, err := s.member.GetTopMembers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top members: %w", err)
	}

	entries := buildEntries(members, s.policy)
	s.storeEntries(ctx, limit, entries)

	return entries, nil
}

// buildEntries annotates an already score-ordered member list with
// competition ranks, badges, and policy-derived display names.
func buildEntries(members []*types.Member, policy DisplayNamePolicy) []*types.LeaderboardEntry {
	entries := make([]*types.LeaderboardEntry, 0, len(members))

	for i, member := range members {
		rank := i + 1
		if i > 0 && member.ReputationScore == members[i-1].ReputationScore {
			rank = entries[i-1].Rank
		}

		entries = append(entries, &types.LeaderboardEntry{
			MemberID:        member.ID,
			DisplayName:     policy.DisplayName(member),
			ReputationScore: member.ReputationScore,
			Rank:            rank,
			Badge:           rankBadge(rank),
		})
	}

	return entries
}

// rankBadge maps a competition rank to its display badge.
func rankBadge(rank int) string {
	switch rank {
	case 1:
		return badgeGold
	case 2:
		return badgeSilver
	case 3:
		return badgeBronze
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

// cachedEntries attempts to serve the leaderboard from the cache.
func (s *LeaderboardService) cachedEntries(ctx context.Context, limit int) ([]*types.LeaderboardEntry, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Do(ctx, s.cache.B().Get().Key(leaderboardKey(limit)).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			s.logger.Warn("Failed to read leaderboard cache", zap.Error(err))
		}

		return nil, false
	}

	var entries []*types.LeaderboardEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Failed to decode cached leaderboard", zap.Error(err))
		return nil, false
	}

	return entries, true
}

// storeEntries writes the assembled leaderboard to the cache. Failures are
// logged and ignored; the cache is an optimization, not a source of truth.
func (s *LeaderboardService) storeEntries(ctx context.Context, limit int, entries []*types.LeaderboardEntry) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := sonic.Marshal(entries)
	if err != nil {
		s.logger.Warn("Failed to encode leaderboard for cache", zap.Error(err))
		return
	}

	err = s.cache.Do(ctx,
		s.cache.B().Set().Key(leaderboardKey(limit)).Value(rueidis.BinaryString(data)).Ex(s.cacheTTL).Build(),
	).Error()
	if err != nil {
		s.logger.Warn("Failed to write leaderboard cache", zap.Error(err))
	}
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}
