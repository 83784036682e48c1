package service

import (
	"context"
	"fmt"
	"time"

	"github.com/civium/civium/internal/database/models"
	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/scoring"
	"go.uber.org/zap"
)

// DefaultParticipationWindow is the trailing window over which unique
// interacting members are counted for the participation metric.
const DefaultParticipationWindow = 30 * 24 * time.Hour

// GovernanceService computes the display-only governance metrics of an
// organization. Nothing here is persisted.
type GovernanceService struct {
	organization        *models.OrganizationModel
	rating              *models.RatingModel
	interaction         *models.InteractionModel
	participationWindow time.Duration
	logger              *zap.Logger
}

// NewGovernance creates a new governance service.
func NewGovernance(
	organization *models.OrganizationModel,
	rating *models.RatingModel,
	interaction *models.InteractionModel,
	participationWindow time.Duration,
	logger *zap.Logger,
) *GovernanceService {
	if participationWindow <= 0 {
		participationWindow = DefaultParticipationWindow
	}

	return &GovernanceService{
		organization:        organization,
		rating:              rating,
		interaction:         interaction,
		participationWindow: participationWindow,
		logger:              logger.Named("governance_service"),
	}
}

// ComputeGovernanceMetrics computes the four independent governance
// percentages for an organization. Metrics with no underlying data fall back
// to their documented baselines; a failed query is surfaced, never defaulted.
func (s *GovernanceService) ComputeGovernanceMetrics(ctx context.Context, orgID uint64) (*types.GovernanceMetrics, error) {
	org, err := s.organization.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	postTotal, postPublic, err := s.organization.CountPosts(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	projectTotal, projectCompleted, err := s.organization.CountProjects(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	since := time.Now().UTC().Add(-s.participationWindow)

	activeMembers, err := s.interaction.CountRecentUniqueMembers(ctx, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}

	ratingStats, err := s.rating.GetStats(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	metrics := scoring.Governance(scoring.GovernanceInputs{
		PostCount:         postTotal,
		PublicPostCount:   postPublic,
		ProjectCount:      projectTotal,
		CompletedProjects: projectCompleted,
		ActiveMembers:     activeMembers,
		FollowerCount:     org.FollowerCount,
		RatingCount:       ratingStats.Count,
		RatingAverage:     ratingStats.Average,
	})

	s.logger.Debug("Computed governance metrics",
		zap.Uint64("organizationID", orgID),
		zap.Int("transparency", metrics.Transparency),
		zap.Int("accountability", metrics.Accountability),
		zap.Int("participation", metrics.Participation),
		zap.Int("trust", metrics.Trust))

	return &metrics, nil
}
