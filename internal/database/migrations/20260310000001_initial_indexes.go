package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Indexes backing the activity aggregation and peer rank queries
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_members_reputation ON members (reputation_score DESC, id ASC)",
			"CREATE INDEX IF NOT EXISTS idx_organizations_trust ON organizations (trust_score DESC)",
			"CREATE INDEX IF NOT EXISTS idx_organizations_region ON organizations (region, trust_score DESC)",
			"CREATE INDEX IF NOT EXISTS idx_organizations_category ON organizations (category, trust_score DESC)",
			"CREATE INDEX IF NOT EXISTS idx_petitions_author ON petitions (author_id)",
			"CREATE INDEX IF NOT EXISTS idx_petition_votes_member ON petition_votes (member_id)",
			"CREATE INDEX IF NOT EXISTS idx_comments_author ON comments (author_id)",
			"CREATE INDEX IF NOT EXISTS idx_ratings_organization ON ratings (organization_id)",
			"CREATE INDEX IF NOT EXISTS idx_interactions_organization ON interactions (organization_id, occurred_at)",
			"CREATE INDEX IF NOT EXISTS idx_petition_responses_organization ON petition_responses (organization_id)",
			"CREATE INDEX IF NOT EXISTS idx_organization_posts_org ON organization_posts (organization_id)",
			"CREATE INDEX IF NOT EXISTS idx_projects_org ON projects (organization_id)",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"idx_members_reputation",
			"idx_organizations_trust",
			"idx_organizations_region",
			"idx_organizations_category",
			"idx_petitions_author",
			"idx_petition_votes_member",
			"idx_comments_author",
			"idx_ratings_organization",
			"idx_interactions_organization",
			"idx_petition_responses_organization",
			"idx_organization_posts_org",
			"idx_projects_org",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(fmt.Sprintf("DROP INDEX IF EXISTS %s", index)).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index %s: %w", index, err)
			}
		}

		return nil
	})
}
