package database

import (
	"time"

	"github.com/civium/civium/internal/database/service"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	reputation  *service.ReputationService
	trust       *service.TrustService
	governance  *service.GovernanceService
	ranking     *service.RankingService
	leaderboard *service.LeaderboardService
}

// ServiceOptions carries the tunables of the score services.
type ServiceOptions struct {
	// Trailing window for the participation metric.
	ParticipationWindow time.Duration
	// Parallelism of batch rank recomputation.
	RankConcurrency int
	// Leaderboard cache client; may be nil.
	LeaderboardCache rueidis.Client
	// Leaderboard cache entry lifetime.
	LeaderboardCacheTTL time.Duration
	// Anonymity policy for leaderboard display names; defaults to the
	// pass-through policy.
	DisplayNamePolicy service.DisplayNamePolicy
}

// NewService creates a new service instance with all services.
func NewService(repository *Repository, opts ServiceOptions, logger *zap.Logger) *Service {
	memberModel := repository.Member()
	organizationModel := repository.Organization()
	ratingModel := repository.Rating()
	interactionModel := repository.Interaction()
	petitionModel := repository.Petition()

	return &Service{
		reputation: service.NewReputation(memberModel, logger),
		trust: service.NewTrust(
			organizationModel, ratingModel, interactionModel, petitionModel, logger,
		),
		governance: service.NewGovernance(
			organizationModel, ratingModel, interactionModel, opts.ParticipationWindow, logger,
		),
		ranking: service.NewRanking(organizationModel, opts.RankConcurrency, logger),
		leaderboard: service.NewLeaderboard(
			memberModel, opts.LeaderboardCache, opts.DisplayNamePolicy, opts.LeaderboardCacheTTL, logger,
		),
	}
}

// Reputation returns the reputation service.
func (s *Service) Reputation() *service.ReputationService {
	return s.reputation
}

// Trust returns the trust service.
func (s *Service) Trust() *service.TrustService {
	return s.trust
}

// Governance returns the governance service.
func (s *Service) Governance() *service.GovernanceService {
	return s.governance
}

// Ranking returns the ranking service.
func (s *Service) Ranking() *service.RankingService {
	return s.ranking
}

// Leaderboard returns the leaderboard service.
func (s *Service) Leaderboard() *service.LeaderboardService {
	return s.leaderboard
}
