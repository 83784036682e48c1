package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrInvalidOrganizationID = errors.New("invalid organization ID")
)

// Organization represents a public body that members rate and interact with.
// TrustScore and the rank fields are cached derived values; the rank fields
// are snapshots of the trust scores visible at computation time and go stale
// until explicitly recomputed.
type Organization struct {
	ID              uint64    `bun:",pk"                json:"id"`
	UUID            uuid.UUID `bun:",notnull"           json:"uuid"`
	Name            string    `bun:",notnull"           json:"name"`
	Region          string    `bun:",nullzero"          json:"region"`
	Category        string    `bun:",nullzero"          json:"category"`
	FollowerCount   int64     `bun:",notnull,default:0" json:"followerCount"`
	TrustScore      float64   `bun:",notnull,default:0" json:"trustScore"`
	TrustVersion    int64     `bun:",notnull,default:0" json:"trustVersion"`
	TrustComputedAt time.Time `bun:",nullzero"          json:"trustComputedAt"`
	NationalRank    int       `bun:",nullzero"          json:"nationalRank"`
	RegionalRank    *int      `bun:",nullzero"          json:"regionalRank"`
	CategoryRank    *int      `bun:",nullzero"          json:"categoryRank"`
	RanksComputedAt time.Time `bun:",nullzero"          json:"ranksComputedAt"`
}

// OrganizationRanks holds the three competition ranks of an organization.
// Regional and category ranks are nil when the organization has no region or
// category attribute to scope by.
type OrganizationRanks struct {
	National int  `json:"national"`
	Regional *int `json:"regional"`
	Category *int `json:"category"`
}

// GovernanceMetrics holds the four independent display-only percentages
// computed for an organization. These are distinct from TrustScore and are
// never persisted.
type GovernanceMetrics struct {
	Transparency   int `json:"transparency"`
	Accountability int `json:"accountability"`
	Participation  int `json:"participation"`
	Trust          int `json:"trust"`
}

// OrganizationPost represents a content item published by an organization.
// Only the visibility flag matters to the engine.
type OrganizationPost struct {
	ID             uint64    `bun:",pk"                    json:"id"`
	OrganizationID uint64    `bun:",notnull"               json:"organizationId"`
	IsPublic       bool      `bun:",notnull,default:false" json:"isPublic"`
	CreatedAt      time.Time `bun:",notnull"               json:"createdAt"`
}

// Project represents an organization project tracked for accountability.
type Project struct {
	ID             uint64    `bun:",pk"                    json:"id"`
	OrganizationID uint64    `bun:",notnull"               json:"organizationId"`
	Title          string    `bun:",notnull"               json:"title"`
	Completed      bool      `bun:",notnull,default:false" json:"completed"`
	CreatedAt      time.Time `bun:",notnull"               json:"createdAt"`
}
