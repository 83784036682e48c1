package types

import (
	"time"

	"github.com/civium/civium/internal/database/types/enum"
)

// Interaction represents a single engagement event between a member and an
// organization. Interactions are append-only; the engine never updates or
// deletes them.
type Interaction struct {
	ID             uint64               `bun:",pk,autoincrement" json:"id"`
	OrganizationID uint64               `bun:",notnull"          json:"organizationId"`
	MemberID       uint64               `bun:",notnull"          json:"memberId"`
	Type           enum.InteractionType `bun:",notnull"          json:"type"`
	OccurredAt     time.Time            `bun:",notnull"          json:"occurredAt"`
}

// InteractionStats aggregates an organization's interactions for scoring.
type InteractionStats struct {
	Total    int64 `bun:"total"    json:"total"`
	Positive int64 `bun:"positive" json:"positive"`
}
