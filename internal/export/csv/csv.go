package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/civium/civium/internal/export/types"
)

// Exporter handles exporting records to csv files.
type Exporter struct {
	outDir string
}

// New creates a new csv exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes member and organization records to separate csv files.
func (e *Exporter) Export(memberRecords []*types.MemberRecord, orgRecords []*types.OrganizationRecord) error {
	// Remove existing files if they exist
	files := []string{"members.csv", "organizations.csv"}
	for _, file := range files {
		path := filepath.Join(e.outDir, file)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing file %s: %w", file, err)
		}
	}

	if err := e.writeMembers("members.csv", memberRecords); err != nil {
		return fmt.Errorf("failed to export members: %w", err)
	}

	if err := e.writeOrganizations("organizations.csv", orgRecords); err != nil {
		return fmt.Errorf("failed to export organizations: %w", err)
	}

	return nil
}

// writeMembers writes member records to a csv file.
func (e *Exporter) writeMembers(filename string, records []*types.MemberRecord) error {
	file, err := os.Create(filepath.Join(e.outDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"hash", "reputation_score", "trust_rating", "level"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write([]string{
			record.Hash,
			strconv.Itoa(record.ReputationScore),
			fmt.Sprintf("%.2f", record.TrustRating),
			record.Level,
		}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}

// writeOrganizations writes organization records to a csv file.
func (e *Exporter) writeOrganizations(filename string, records []*types.OrganizationRecord) error {
	file, err := os.Create(filepath.Join(e.outDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"name", "trust_score", "national_rank", "regional_rank", "category_rank",
	}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write([]string{
			record.Name,
			fmt.Sprintf("%.1f", record.TrustScore),
			strconv.Itoa(record.NationalRank),
			strconv.Itoa(record.RegionalRank),
			strconv.Itoa(record.CategoryRank),
		}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
