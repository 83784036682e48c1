package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/civium/civium/internal/database"
	dbTypes "github.com/civium/civium/internal/database/types"
	"github.com/civium/civium/internal/export/csv"
	"github.com/civium/civium/internal/export/sqlite"
	"github.com/civium/civium/internal/export/types"
	"github.com/civium/civium/internal/scoring"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported export format.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatCSV    Format = "csv"
)

// EngineVersion represents the version of the export engine.
// This should be updated when making breaking changes to the export format.
const EngineVersion = "1.0.0"

// Config holds the configuration for exports.
type Config struct {
	ExportVersion string `json:"exportVersion"`
	Salt          string `json:"salt"`
	Description   string `json:"description"`
	HashType      string `json:"hashType"`
	Iterations    uint32 `json:"iterations"`
	Memory        uint32 `json:"memory,omitempty"`
	Concurrency   int64  `json:"-"`
}

// Exporter handles exporting member reputation and organization trust data.
type Exporter struct {
	db      database.Client
	outDir  string
	config  *Config
	formats []Format
}

// New creates a new exporter instance.
func New(db database.Client, outDir string, config *Config) *Exporter {
	return &Exporter{
		db:     db,
		outDir: outDir,
		config: config,
		formats: []Format{
			FormatSQLite,
			FormatCSV,
		},
	}
}

// ExportAll exports all data in all supported formats.
func (e *Exporter) ExportAll(ctx context.Context) error {
	// Print export configuration
	fmt.Printf("Starting export with configuration:\n")
	fmt.Printf("  Hash Type: %s\n", e.config.HashType)
	fmt.Printf("  Concurrency: %d workers\n", e.config.Concurrency)
	fmt.Printf("  Iterations: %d\n", e.config.Iterations)

	if e.config.HashType == string(HashTypeArgon2id) {
		fmt.Printf("  Memory: %d MB\n", e.config.Memory)
	}

	fmt.Printf("  Output Directory: %s\n", e.outDir)
	fmt.Printf("  Export Version: %s\n", e.config.ExportVersion)
	fmt.Printf("  Engine Version: %s\n", EngineVersion)
	fmt.Printf("  Description: %s\n\n", e.config.Description)

	// Fetch members and organizations
	fmt.Printf("Fetching data from database...\n")

	members, err := e.db.Model().Member().GetAllMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get members: %w", err)
	}

	organizations, err := e.db.Model().Organization().GetAllOrganizations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get organizations: %w", err)
	}

	fmt.Printf("Found %d members and %d organizations to export\n\n", len(members), len(organizations))

	// Convert to export records
	fmt.Printf("Hashing member IDs...\n")

	memberRecords := e.buildMemberRecords(members)

	fmt.Printf("\nCompleted hashing all records\n\n")

	orgRecords := buildOrganizationRecords(organizations)

	// Save config file
	fmt.Printf("Saving export configuration...\n")

	if err := e.writeConfig(); err != nil {
		return err
	}

	// Export each format
	fmt.Printf("Exporting data in %d formats...\n", len(e.formats))

	for _, format := range e.formats {
		fmt.Printf("  Writing %s format...\n", format)

		if err := e.export(format, memberRecords, orgRecords); err != nil {
			return fmt.Errorf("failed to export %s format: %w", format, err)
		}
	}

	fmt.Printf("\nExport completed successfully\n")
	fmt.Printf("Files written to: %s\n", e.outDir)

	return nil
}

// buildMemberRecords converts members to export records with concurrent ID hashing.
func (e *Exporter) buildMemberRecords(members []*dbTypes.Member) []*types.MemberRecord {
	ids := make([]uint64, len(members))
	for i, member := range members {
		ids[i] = member.ID
	}

	// Hash IDs concurrently
	hashes := hashIDs(
		ids, e.config.Salt, HashType(e.config.HashType),
		e.config.Concurrency, e.config.Iterations, e.config.Memory,
	)

	records := make([]*types.MemberRecord, len(members))
	for i, member := range members {
		view := scoring.DeriveTrustView(member.ReputationScore)

		records[i] = &types.MemberRecord{
			Hash:            hashes[i],
			ReputationScore: member.ReputationScore,
			TrustRating:     view.Rating,
			Level:           view.Level.String(),
		}
	}

	return records
}

// buildOrganizationRecords converts organizations to export records.
func buildOrganizationRecords(organizations []*dbTypes.Organization) []*types.OrganizationRecord {
	records := make([]*types.OrganizationRecord, len(organizations))
	for i, org := range organizations {
		record := &types.OrganizationRecord{
			Name:         org.Name,
			TrustScore:   org.TrustScore,
			NationalRank: org.NationalRank,
		}

		if org.RegionalRank != nil {
			record.RegionalRank = *org.RegionalRank
		}

		if org.CategoryRank != nil {
			record.CategoryRank = *org.CategoryRank
		}

		records[i] = record
	}

	return records
}

// writeConfig saves the export configuration alongside the exported files.
func (e *Exporter) writeConfig() error {
	configPath := filepath.Join(e.outDir, "export_config.json")

	jsonConfig := struct {
		*Config

		EngineVersion string `json:"engineVersion"`
	}{
		Config:        e.config,
		EngineVersion: EngineVersion,
	}

	configData, err := sonic.MarshalIndent(jsonConfig, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal export config: %w", err)
	}

	if err := os.WriteFile(configPath, configData, 0o600); err != nil {
		return fmt.Errorf("failed to write export config: %w", err)
	}

	return nil
}

// export handles exporting data in the specified format.
func (e *Exporter) export(format Format, memberRecords []*types.MemberRecord, orgRecords []*types.OrganizationRecord) error {
	var exporter interface {
		Export(memberRecords []*types.MemberRecord, orgRecords []*types.OrganizationRecord) error
	}

	switch format {
	case FormatSQLite:
		exporter = sqlite.New(e.outDir)
	case FormatCSV:
		exporter = csv.New(e.outDir)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return exporter.Export(memberRecords, orgRecords)
}
