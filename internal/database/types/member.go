package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidMemberID = errors.New("invalid member ID")
)

// Member represents a platform member with their cached reputation fields.
// ReputationScore is a derived value owned by the reputation scorer; it is
// never mutated by direct user action.
type Member struct {
	ID                   uint64    `bun:",pk"                json:"id"`
	UUID                 uuid.UUID `bun:",notnull"           json:"uuid"`
	Username             string    `bun:",notnull"           json:"username"`
	DisplayName          string    `bun:",notnull"           json:"displayName"`
	JoinedAt             time.Time `bun:",notnull"           json:"joinedAt"`
	ReputationScore      int       `bun:",notnull,default:0" json:"reputationScore"`
	ReputationVersion    int64     `bun:",notnull,default:0" json:"reputationVersion"`
	ReputationComputedAt time.Time `bun:",nullzero"          json:"reputationComputedAt"`
}

// PetitionTally holds the vote counts of a single authored petition.
type PetitionTally struct {
	PetitionID   uint64 `bun:"id"            json:"petitionId"`
	VotesFor     int64  `bun:"votes_for"     json:"votesFor"`
	VotesAgainst int64  `bun:"votes_against" json:"votesAgainst"`
}

// MemberActivity is a snapshot of the raw activity counts a member's
// reputation is computed from. It is read in full before scoring; a partial
// snapshot is never scored.
type MemberActivity struct {
	Petitions        []*PetitionTally
	CommentsAuthored int64
	VotesCast        int64
}
