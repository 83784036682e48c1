package service

import (
	"context"
	"fmt"

	"github.com/civium/civium/internal/database/models"
	"github.com/civium/civium/internal/database/types"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// DefaultRankConcurrency bounds the parallelism of batch rank recomputation.
const DefaultRankConcurrency = 8

// RankingService computes competition ranks for organizations.
type RankingService struct {
	organization *models.OrganizationModel
	concurrency  int
	logger       *zap.Logger
}

// NewRanking creates a new ranking service.
func NewRanking(organization *models.OrganizationModel, concurrency int, logger *zap.Logger) *RankingService {
	if concurrency <= 0 {
		concurrency = DefaultRankConcurrency
	}

	return &RankingService{
		organization: organization,
		concurrency:  concurrency,
		logger:       logger.Named("ranking_service"),
	}
}

// ComputeRankings determines an organization's competition rank within the
// national, regional, and category scopes: one plus the count of peers with
// a strictly greater trust score. Tied organizations share a rank number and
// subsequent ranks skip accordingly. Regional and category ranks are nil
// when the organization lacks the attribute. All three rank fields are
// persisted; when the organization does not exist nothing is written.
func (s *RankingService) ComputeRankings(ctx context.Context, orgID uint64) (*types.OrganizationRanks, error) {
	org, err := s.organization.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	national, err := s.organization.CountPeersAbove(ctx, org.TrustScore, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to compute national rank: %w", err)
	}

	ranks := &types.OrganizationRanks{National: national + 1}

	if org.Region != "" {
		regional, err := s.organization.CountPeersAbove(ctx, org.TrustScore, org.Region, "")
		if err != nil {
			return nil, fmt.Errorf("failed to compute regional rank: %w", err)
		}

		rank := regional + 1
		ranks.Regional = &rank
	}

	if org.Category != "" {
		category, err := s.organization.CountPeersAbove(ctx, org.TrustScore, "", org.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to compute category rank: %w", err)
		}

		rank := category + 1
		ranks.Category = &rank
	}

	if err := s.organization.UpdateRanks(ctx, orgID, ranks); err != nil {
		return nil, fmt.Errorf("failed to persist ranks: %w", err)
	}

	s.logger.Debug("Recomputed organization ranks",
		zap.Uint64("organizationID", orgID),
		zap.Int("national", ranks.National))

	return ranks, nil
}

// RecomputeAll refreshes the rank fields of every organization through a
// bounded worker pool. Rank refresh is always explicit; it is never
// scheduled.
func (s *RankingService) RecomputeAll(ctx context.Context) error {
	ids, err := s.organization.GetAllOrganizationIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	p := pool.New().
		WithErrors().
		WithContext(ctx).
		WithMaxGoroutines(s.concurrency)

	for _, id := range ids {
		p.Go(func(ctx context.Context) error {
			if _, err := s.ComputeRankings(ctx, id); err != nil {
				return fmt.Errorf("organization %d: %w", id, err)
			}

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return fmt.Errorf("batch rank recomputation failed: %w", err)
	}

	s.logger.Info("Recomputed ranks for all organizations", zap.Int("count", len(ids)))

	return nil
}
