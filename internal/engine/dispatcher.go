// Package engine wires the mutation workflows to the score services through
// explicit post-mutation hooks. Mutation handlers report what happened; the
// dispatcher decides what to recompute and serializes recomputation per
// entity, which closes the lost-update window of two concurrent
// read-aggregate-write cycles on the same cached score field.
package engine

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MemberScorer recomputes and persists a member's reputation score.
type MemberScorer interface {
	ComputeMemberReputation(ctx context.Context, memberID uint64) (int, error)
}

// TrustScorer recomputes and persists an organization's trust score.
type TrustScorer interface {
	ComputeOrganizationTrustScore(ctx context.Context, orgID uint64) (float64, error)
}

// Dispatcher routes post-mutation events to the score services. Calls for
// the same entity run one at a time; calls for different entities run
// independently.
type Dispatcher struct {
	members MemberScorer
	trust   TrustScorer
	locks   sync.Map // entity key -> *sync.Mutex
	logger  *zap.Logger
}

// NewDispatcher creates a new recompute dispatcher.
func NewDispatcher(members MemberScorer, trust TrustScorer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		members: members,
		trust:   trust,
		logger:  logger.Named("engine"),
	}
}

// RatingSubmitted recomputes the organization's trust score after a rating
// was submitted or overwritten.
func (d *Dispatcher) RatingSubmitted(ctx context.Context, orgID uint64) (float64, error) {
	return d.recomputeTrust(ctx, orgID)
}

// InteractionRecorded recomputes the organization's trust score after a new
// interaction event.
func (d *Dispatcher) InteractionRecorded(ctx context.Context, orgID uint64) (float64, error) {
	return d.recomputeTrust(ctx, orgID)
}

// PetitionCreated recomputes the author's reputation after a new petition.
func (d *Dispatcher) PetitionCreated(ctx context.Context, authorID uint64) (int, error) {
	return d.recomputeReputation(ctx, authorID)
}

// CommentPosted recomputes the author's reputation after a new comment.
func (d *Dispatcher) CommentPosted(ctx context.Context, authorID uint64) (int, error) {
	return d.recomputeReputation(ctx, authorID)
}

// VoteCast recomputes both affected members after a petition vote: the voter
// earns the vote weight, the petition author's support ratio shifts. Both
// recomputations are attempted even if one fails.
func (d *Dispatcher) VoteCast(ctx context.Context, voterID, authorID uint64) error {
	var g errgroup.Group

	g.Go(func() error {
		if _, err := d.recomputeReputation(ctx, voterID); err != nil {
			return fmt.Errorf("voter %d: %w", voterID, err)
		}

		return nil
	})

	if authorID != voterID {
		g.Go(func() error {
			if _, err := d.recomputeReputation(ctx, authorID); err != nil {
				return fmt.Errorf("author %d: %w", authorID, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func (d *Dispatcher) recomputeReputation(ctx context.Context, memberID uint64) (int, error) {
	mu := d.entityLock(fmt.Sprintf("member:%d", memberID))
	mu.Lock()
	defer mu.Unlock()

	score, err := d.members.ComputeMemberReputation(ctx, memberID)
	if err != nil {
		d.logger.Warn("Reputation recomputation failed",
			zap.Uint64("memberID", memberID),
			zap.Error(err))

		return score, err
	}

	return score, nil
}

func (d *Dispatcher) recomputeTrust(ctx context.Context, orgID uint64) (float64, error) {
	mu := d.entityLock(fmt.Sprintf("org:%d", orgID))
	mu.Lock()
	defer mu.Unlock()

	score, err := d.trust.ComputeOrganizationTrustScore(ctx, orgID)
	if err != nil {
		d.logger.Warn("Trust recomputation failed",
			zap.Uint64("organizationID", orgID),
			zap.Error(err))

		return score, err
	}

	return score, nil
}

// entityLock returns the mutex serializing recomputation for one entity.
// Locks are never removed; the entity space is bounded by the member and
// organization populations.
func (d *Dispatcher) entityLock(key string) *sync.Mutex {
	lock, _ := d.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex) //nolint:forcetypeassert // only mutexes are stored
}
