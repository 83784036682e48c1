package types

import "time"

// Petition represents a petition authored by a member and addressed to an
// organization. The vote tallies are maintained by the petition workflow;
// the engine only reads them.
type Petition struct {
	ID             uint64    `bun:",pk"                    json:"id"`
	AuthorID       uint64    `bun:",notnull"               json:"authorId"`
	OrganizationID uint64    `bun:",notnull"               json:"organizationId"`
	Title          string    `bun:",notnull"               json:"title"`
	IsPublic       bool      `bun:",notnull,default:true"  json:"isPublic"`
	VotesFor       int64     `bun:",notnull,default:0"     json:"votesFor"`
	VotesAgainst   int64     `bun:",notnull,default:0"     json:"votesAgainst"`
	CreatedAt      time.Time `bun:",notnull"               json:"createdAt"`
}

// PetitionVote represents a member's vote on a petition.
type PetitionVote struct {
	PetitionID uint64    `bun:",pk"      json:"petitionId"`
	MemberID   uint64    `bun:",pk"      json:"memberId"`
	Support    bool      `bun:",notnull" json:"support"`
	CreatedAt  time.Time `bun:",notnull" json:"createdAt"`
}

// Comment represents a member's comment on a petition.
type Comment struct {
	ID         uint64    `bun:",pk"      json:"id"`
	PetitionID uint64    `bun:",notnull" json:"petitionId"`
	AuthorID   uint64    `bun:",notnull" json:"authorId"`
	Message    string    `bun:",notnull" json:"message"`
	CreatedAt  time.Time `bun:",notnull" json:"createdAt"`
}

// PetitionResponse represents an organization's response record to a
// petition. ResponseText is empty until the organization actually answers;
// the response-rate component of the trust score counts answered records.
type PetitionResponse struct {
	ID             uint64    `bun:",pk"       json:"id"`
	PetitionID     uint64    `bun:",notnull"  json:"petitionId"`
	OrganizationID uint64    `bun:",notnull"  json:"organizationId"`
	ResponseText   string    `bun:",nullzero" json:"responseText"`
	RespondedAt    time.Time `bun:",nullzero" json:"respondedAt"`
}
