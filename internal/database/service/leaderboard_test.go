package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/civium/civium/internal/database/types"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func member(id uint64, name string, score int) *types.Member {
	return &types.Member{ID: id, Username: name, ReputationScore: score}
}

func TestBuildEntriesOrderingAndBadges(t *testing.T) {
	t.Parallel()

	// Already score-ordered, as the query returns them.
	members := []*types.Member{
		member(3, "casey", 9999),
		member(1, "alex", 500),
		member(2, "briar", 10),
	}

	entries := buildEntries(members, PublicNamePolicy{})
	require.Len(t, entries, 3)

	assert.Equal(t, []int{9999, 500, 10}, []int{
		entries[0].ReputationScore, entries[1].ReputationScore, entries[2].ReputationScore,
	})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})

	// Gold only on position 1.
	assert.Equal(t, badgeGold, entries[0].Badge)
	assert.Equal(t, badgeSilver, entries[1].Badge)
	assert.Equal(t, badgeBronze, entries[2].Badge)
}

func TestBuildEntriesTiesShareRank(t *testing.T) {
	t.Parallel()

	members := []*types.Member{
		member(1, "a", 90),
		member(2, "b", 90),
		member(3, "c", 70),
		member(4, "d", 70),
		member(5, "e", 50),
	}

	entries := buildEntries(members, PublicNamePolicy{})

	ranks := make([]int, len(entries))
	for i, e := range entries {
		ranks[i] = e.Rank
	}

	// Competition ranking: ties share a rank, later ranks skip.
	assert.Equal(t, []int{1, 1, 3, 3, 5}, ranks)
	assert.Equal(t, badgeGold, entries[0].Badge)
	assert.Equal(t, badgeGold, entries[1].Badge)
	assert.Equal(t, badgeBronze, entries[2].Badge)
	assert.Equal(t, "#5", entries[4].Badge)
}

func TestBuildEntriesOrdinalBadges(t *testing.T) {
	t.Parallel()

	members := []*types.Member{
		member(1, "a", 400),
		member(2, "b", 300),
		member(3, "c", 200),
		member(4, "d", 100),
	}

	entries := buildEntries(members, PublicNamePolicy{})
	assert.Equal(t, "#4", entries[3].Badge)
}

type maskedPolicy struct{}

func (maskedPolicy) DisplayName(*types.Member) string { return "anonymous" }

func TestBuildEntriesDelegatesDisplayName(t *testing.T) {
	t.Parallel()

	entries := buildEntries([]*types.Member{member(1, "real-name", 10)}, maskedPolicy{})
	require.Len(t, entries, 1)
	assert.Equal(t, "anonymous", entries[0].DisplayName)
}

func TestLeaderboardCacheRoundTrip(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	defer client.Close()

	svc := NewLeaderboard(nil, client, nil, time.Minute, zap.NewNop())

	entries := []*types.LeaderboardEntry{
		{MemberID: 7, DisplayName: "casey", ReputationScore: 9999, Rank: 1, Badge: badgeGold},
		{MemberID: 9, DisplayName: "alex", ReputationScore: 500, Rank: 2, Badge: badgeSilver},
	}

	ctx := t.Context()
	svc.storeEntries(ctx, 2, entries)

	cached, ok := svc.cachedEntries(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, entries, cached)

	// Different limit is a different cache key.
	_, ok = svc.cachedEntries(ctx, 3)
	assert.False(t, ok)

	// Stored payload is plain JSON.
	raw, err := mr.Get(leaderboardKey(2))
	require.NoError(t, err)

	var decoded []*types.LeaderboardEntry
	require.NoError(t, sonic.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, entries, decoded)
}
