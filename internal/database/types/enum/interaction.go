package enum

// InteractionType represents the kind of engagement a member had with an organization.
//
//go:generate go tool enumer -type=InteractionType -trimprefix=InteractionType
type InteractionType int

const (
	// InteractionTypeView indicates a member viewed the organization profile.
	InteractionTypeView InteractionType = iota
	// InteractionTypeFollow indicates a member started following the organization.
	InteractionTypeFollow
	// InteractionTypeEndorse indicates a member endorsed the organization.
	InteractionTypeEndorse
	// InteractionTypeShare indicates a member shared organization content.
	InteractionTypeShare
	// InteractionTypeAttend indicates a member attended an organization event.
	InteractionTypeAttend
	// InteractionTypeReport indicates a member reported the organization.
	InteractionTypeReport
	// InteractionTypeComplaint indicates a member filed a complaint against the organization.
	InteractionTypeComplaint
)

// IsPositive reports whether the interaction counts toward the positive
// component of an organization's trust score.
func (i InteractionType) IsPositive() bool {
	switch i {
	case InteractionTypeEndorse, InteractionTypeShare, InteractionTypeAttend:
		return true
	case InteractionTypeView, InteractionTypeFollow, InteractionTypeReport, InteractionTypeComplaint:
		return false
	default:
		return false
	}
}
