package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/civium/civium/internal/scoring"
	"github.com/civium/civium/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// EngineLogDir specifies where engine log files are stored.
const EngineLogDir = "logs/engine_logs"

var ErrIDRequired = errors.New("ID argument required")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	app, err := setup.InitializeApp(ctx, "engine", EngineLogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Cleanup(ctx)

	cmd := &cli.Command{
		Name:  "engine",
		Usage: "Reputation and trust scoring engine",
		Commands: []*cli.Command{
			{
				Name:  "member",
				Usage: "Member reputation operations",
				Commands: []*cli.Command{
					{
						Name:      "reputation",
						Usage:     "Recompute a member's reputation score",
						ArgsUsage: "ID",
						Action: func(ctx context.Context, c *cli.Command) error {
							memberID, err := parseID(c)
							if err != nil {
								return err
							}

							score, err := app.DB.Service().Reputation().ComputeMemberReputation(ctx, memberID)
							if err != nil {
								return err
							}

							view := scoring.DeriveTrustView(score)

							fmt.Printf("Member %d\n", memberID)
							fmt.Printf("  Reputation: %d\n", score)
							fmt.Printf("  Rating:     %.2f / %.0f\n", view.Rating, scoring.MaxTrustRating)
							fmt.Printf("  Level:      %s %s\n", view.Badge, view.Level)

							return nil
						},
					},
				},
			},
			{
				Name:  "org",
				Usage: "Organization trust operations",
				Commands: []*cli.Command{
					{
						Name:      "trust",
						Usage:     "Recompute an organization's trust score",
						ArgsUsage: "ID",
						Action: func(ctx context.Context, c *cli.Command) error {
							orgID, err := parseID(c)
							if err != nil {
								return err
							}

							score, err := app.DB.Service().Trust().ComputeOrganizationTrustScore(ctx, orgID)
							if err != nil {
								return err
							}

							fmt.Printf("Organization %d\n", orgID)
							fmt.Printf("  Trust score: %.1f\n", score)

							return nil
						},
					},
					{
						Name:      "governance",
						Usage:     "Compute an organization's governance metrics",
						ArgsUsage: "ID",
						Action: func(ctx context.Context, c *cli.Command) error {
							orgID, err := parseID(c)
							if err != nil {
								return err
							}

							metrics, err := app.DB.Service().Governance().ComputeGovernanceMetrics(ctx, orgID)
							if err != nil {
								return err
							}

							fmt.Printf("Organization %d\n", orgID)
							fmt.Printf("  Transparency:   %d%%\n", metrics.Transparency)
							fmt.Printf("  Accountability: %d%%\n", metrics.Accountability)
							fmt.Printf("  Participation:  %d%%\n", metrics.Participation)
							fmt.Printf("  Trust:          %d%%\n", metrics.Trust)

							return nil
						},
					},
					{
						Name:      "rank",
						Usage:     "Recompute competition rankings",
						ArgsUsage: "[ID]",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "all",
								Usage: "Recompute rankings for every organization",
							},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Bool("all") {
								if err := app.DB.Service().Ranking().RecomputeAll(ctx); err != nil {
									return err
								}

								app.Logger.Info("Recomputed all organization rankings")
								fmt.Println("Recomputed rankings for all organizations")

								return nil
							}

							orgID, err := parseID(c)
							if err != nil {
								return err
							}

							ranks, err := app.DB.Service().Ranking().ComputeRankings(ctx, orgID)
							if err != nil {
								return err
							}

							fmt.Printf("Organization %d\n", orgID)
							fmt.Printf("  National rank: #%d\n", ranks.National)

							if ranks.Regional != nil {
								fmt.Printf("  Regional rank: #%d\n", *ranks.Regional)
							}

							if ranks.Category != nil {
								fmt.Printf("  Category rank: #%d\n", *ranks.Category)
							}

							return nil
						},
					},
				},
			},
			{
				Name:  "leaderboard",
				Usage: "Assemble the member reputation leaderboard",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Number of members to include",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					entries, err := app.DB.Service().Leaderboard().GetLeaderboard(ctx, int(c.Int("limit")))
					if err != nil {
						return err
					}

					for _, entry := range entries {
						fmt.Printf("%-6s %-24s %d\n", entry.Badge, entry.DisplayName, entry.ReputationScore)
					}

					app.Logger.Info("Assembled leaderboard", zap.Int("entries", len(entries)))

					return nil
				},
			},
		},
	}

	return cmd.Run(ctx, os.Args)
}

// parseID reads the single required ID argument.
func parseID(c *cli.Command) (uint64, error) {
	if c.Args().Len() != 1 {
		return 0, ErrIDRequired
	}

	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", c.Args().First(), err)
	}

	return id, nil
}
