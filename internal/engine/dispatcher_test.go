package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/civium/civium/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeScorers counts invocations and detects overlapping calls per entity.
type fakeScorers struct {
	mu         sync.Mutex
	memberCall map[uint64]int
	trustCall  map[uint64]int
	inFlight   map[uint64]bool
	overlap    bool
	memberErr  error
}

func newFakeScorers() *fakeScorers {
	return &fakeScorers{
		memberCall: make(map[uint64]int),
		trustCall:  make(map[uint64]int),
		inFlight:   make(map[uint64]bool),
	}
}

func (f *fakeScorers) ComputeMemberReputation(_ context.Context, memberID uint64) (int, error) {
	f.mu.Lock()
	if f.inFlight[memberID] {
		f.overlap = true
	}

	f.inFlight[memberID] = true
	f.memberCall[memberID]++
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight[memberID] = false
		f.mu.Unlock()
	}()

	if f.memberErr != nil {
		return 0, f.memberErr
	}

	return 42, nil
}

func (f *fakeScorers) ComputeOrganizationTrustScore(_ context.Context, orgID uint64) (float64, error) {
	f.mu.Lock()
	f.trustCall[orgID]++
	f.mu.Unlock()

	return 73.5, nil
}

func TestDispatcherRoutesEvents(t *testing.T) {
	t.Parallel()

	scorers := newFakeScorers()
	dispatcher := engine.NewDispatcher(scorers, scorers, zap.NewNop())
	ctx := t.Context()

	score, err := dispatcher.PetitionCreated(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, score)

	_, err = dispatcher.CommentPosted(ctx, 1)
	require.NoError(t, err)

	trust, err := dispatcher.RatingSubmitted(ctx, 5)
	require.NoError(t, err)
	assert.InDelta(t, 73.5, trust, 0.001)

	_, err = dispatcher.InteractionRecorded(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, scorers.memberCall[1])
	assert.Equal(t, 2, scorers.trustCall[5])
}

func TestDispatcherVoteCastUpdatesBothMembers(t *testing.T) {
	t.Parallel()

	scorers := newFakeScorers()
	dispatcher := engine.NewDispatcher(scorers, scorers, zap.NewNop())

	require.NoError(t, dispatcher.VoteCast(t.Context(), 1, 2))
	assert.Equal(t, 1, scorers.memberCall[1])
	assert.Equal(t, 1, scorers.memberCall[2])
}

func TestDispatcherVoteCastSelfVote(t *testing.T) {
	t.Parallel()

	scorers := newFakeScorers()
	dispatcher := engine.NewDispatcher(scorers, scorers, zap.NewNop())

	// Voting on one's own petition recomputes the member once.
	require.NoError(t, dispatcher.VoteCast(t.Context(), 7, 7))
	assert.Equal(t, 1, scorers.memberCall[7])
}

func TestDispatcherSerializesPerEntity(t *testing.T) {
	t.Parallel()

	scorers := newFakeScorers()
	dispatcher := engine.NewDispatcher(scorers, scorers, zap.NewNop())
	ctx := t.Context()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := dispatcher.CommentPosted(ctx, 9)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	// Every trigger recomputes, but never two at once for the same member.
	assert.Equal(t, 20, scorers.memberCall[9])
	assert.False(t, scorers.overlap, "recomputations for one entity must not overlap")
}

func TestDispatcherSurfacesScorerErrors(t *testing.T) {
	t.Parallel()

	scorers := newFakeScorers()
	scorers.memberErr = errors.New("store unavailable")
	dispatcher := engine.NewDispatcher(scorers, scorers, zap.NewNop())

	_, err := dispatcher.PetitionCreated(t.Context(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, scorers.memberErr)

	err = dispatcher.VoteCast(t.Context(), 3, 4)
	require.Error(t, err)
}
