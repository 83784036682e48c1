package database

import (
	"github.com/civium/civium/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	member       *models.MemberModel
	organization *models.OrganizationModel
	rating       *models.RatingModel
	interaction  *models.InteractionModel
	petition     *models.PetitionModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		member:       models.NewMember(db, logger),
		organization: models.NewOrganization(db, logger),
		rating:       models.NewRating(db, logger),
		interaction:  models.NewInteraction(db, logger),
		petition:     models.NewPetition(db, logger),
	}
}

// Member returns the member model repository.
func (r *Repository) Member() *models.MemberModel {
	return r.member
}

// Organization returns the organization model repository.
func (r *Repository) Organization() *models.OrganizationModel {
	return r.organization
}

// Rating returns the rating model repository.
func (r *Repository) Rating() *models.RatingModel {
	return r.rating
}

// Interaction returns the interaction model repository.
func (r *Repository) Interaction() *models.InteractionModel {
	return r.interaction
}

// Petition returns the petition model repository.
func (r *Repository) Petition() *models.PetitionModel {
	return r.petition
}
