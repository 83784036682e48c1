package types

// MemberRecord represents one member row in the export file. Member IDs are
// hashed so exports can be shared without exposing raw identifiers.
type MemberRecord struct {
	Hash            string
	ReputationScore int
	TrustRating     float64
	Level           string
}

// OrganizationRecord represents one organization row in the export file.
// Organizations are public entities, so their names are exported as-is.
type OrganizationRecord struct {
	Name         string
	TrustScore   float64
	NationalRank int
	// Zero when the organization has no region or category.
	RegionalRank int
	CategoryRank int
}
