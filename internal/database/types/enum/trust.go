package enum

// TrustLevel represents the named tier a member's reputation score falls into.
//
//go:generate go tool enumer -type=TrustLevel -trimprefix=TrustLevel
type TrustLevel int

const (
	// TrustLevelNewcomer is the starting tier for members below 500 reputation.
	TrustLevelNewcomer TrustLevel = iota
	// TrustLevelParticipant is reached at 500 reputation.
	TrustLevelParticipant
	// TrustLevelContributor is reached at 1000 reputation.
	TrustLevelContributor
	// TrustLevelActivist is reached at 2500 reputation.
	TrustLevelActivist
	// TrustLevelLeader is reached at 5000 reputation.
	TrustLevelLeader
	// TrustLevelChampion is the highest tier, reached at 8000 reputation.
	TrustLevelChampion
)
