package migrations

import (
	"context"
	"fmt"

	"github.com/civium/civium/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Create tables
		tables := []struct {
			model any
			name  string
		}{
			{(*types.Member)(nil), "members"},
			{(*types.Organization)(nil), "organizations"},
			{(*types.Petition)(nil), "petitions"},
			{(*types.PetitionVote)(nil), "petition_votes"},
			{(*types.Comment)(nil), "comments"},
			{(*types.Rating)(nil), "ratings"},
			{(*types.Interaction)(nil), "interactions"},
			{(*types.PetitionResponse)(nil), "petition_responses"},
			{(*types.OrganizationPost)(nil), "organization_posts"},
			{(*types.Project)(nil), "projects"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				ModelTableExpr(table.name).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []string{
			"projects", "organization_posts", "petition_responses", "interactions",
			"ratings", "comments", "petition_votes", "petitions", "organizations", "members",
		}

		for _, table := range tables {
			_, err := db.NewDropTable().
				TableExpr(table).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}

		return nil
	})
}
