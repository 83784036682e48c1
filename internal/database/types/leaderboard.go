package types

// LeaderboardEntry is one row of the member reputation leaderboard.
// DisplayName is produced by the caller-provided anonymity policy, never
// read directly from the member record.
type LeaderboardEntry struct {
	MemberID        uint64 `json:"memberId"`
	DisplayName     string `json:"displayName"`
	ReputationScore int    `json:"reputationScore"`
	Rank            int    `json:"rank"`
	Badge           string `json:"badge"`
}
