package service

import (
	"context"
	"fmt"

	"github.com/civium/civium/internal/database/models"
	"github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/scoring"
	"go.uber.org/zap"
)

// TrustService handles organization trust scoring.
type TrustService struct {
	organization *models.OrganizationModel
	rating       *models.RatingModel
	interaction  *models.InteractionModel
	petition     *models.PetitionModel
	logger       *zap.Logger
}

// NewTrust creates a new trust service.
func NewTrust(
	organization *models.OrganizationModel,
	rating *models.RatingModel,
	interaction *models.InteractionModel,
	petition *models.PetitionModel,
	logger *zap.Logger,
) *TrustService {
	return &TrustService{
		organization: organization,
		rating:       rating,
		interaction:  interaction,
		petition:     petition,
		logger:       logger.Named("trust_service"),
	}
}

// ComputeOrganizationTrustScore recomputes an organization's trust score
// from the full history of its ratings, interactions, and petition response
// records, then persists it onto the organization record. The read and the
// write are not wrapped in a transaction; direct concurrent calls for the
// same organization are last-writer-wins. The engine dispatcher serializes
// recomputation per organization for callers that need the stronger
// guarantee. When only the persist fails, the computed score is still
// returned alongside the error.
func (s *TrustService) ComputeOrganizationTrustScore(ctx context.Context, orgID uint64) (float64, error) {
	if orgID == 0 {
		return 0, types.ErrInvalidOrganizationID
	}

	if _, err := s.organization.GetOrganization(ctx, orgID); err != nil {
		return 0, err
	}

	ratingStats, err := s.rating.GetStats(ctx, orgID)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	interactionStats, err := s.interaction.GetStats(ctx, orgID)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate interactions: %w", err)
	}

	responseTotal, responseAnswered, err := s.petition.GetResponseStats(ctx, orgID)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate petition responses: %w", err)
	}

	score := scoring.OrganizationTrust(scoring.TrustInputs{
		RatingCount:          ratingStats.Count,
		RatingAverage:        ratingStats.Average,
		InteractionCount:     interactionStats.Total,
		PositiveInteractions: interactionStats.Positive,
		ResponseCount:        responseTotal,
		AnsweredResponses:    responseAnswered,
	})

	if err := s.organization.UpdateTrustScore(ctx, orgID, score); err != nil {
		return score, fmt.Errorf("failed to persist trust score: %w", err)
	}

	s.logger.Debug("Recomputed organization trust score",
		zap.Uint64("organizationID", orgID),
		zap.Float64("score", score),
		zap.Int64("ratings", ratingStats.Count),
		zap.Int64("interactions", interactionStats.Total),
		zap.Int64("responses", responseTotal))

	return score, nil
}
