package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/civium/civium/internal/export/types"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Exporter handles exporting records to SQLite databases.
type Exporter struct {
	outDir string
}

// New creates a new SQLite exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes member and organization records to separate SQLite databases.
func (e *Exporter) Export(memberRecords []*types.MemberRecord, orgRecords []*types.OrganizationRecord) error {
	// Remove existing files if they exist
	files := []string{"members.db", "organizations.db"}
	for _, file := range files {
		path := filepath.Join(e.outDir, file)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing file %s: %w", file, err)
		}
	}

	if err := e.createMemberDB("members.db", memberRecords); err != nil {
		return fmt.Errorf("failed to export members: %w", err)
	}

	if err := e.createOrganizationDB("organizations.db", orgRecords); err != nil {
		return fmt.Errorf("failed to export organizations: %w", err)
	}

	return nil
}

// createMemberDB creates a SQLite database with a single members table.
func (e *Exporter) createMemberDB(filename string, records []*types.MemberRecord) error {
	conn, err := sqlite.OpenConn(filepath.Join(e.outDir, filename), sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE members (
			hash TEXT PRIMARY KEY,
			reputation_score INTEGER NOT NULL,
			trust_rating REAL NOT NULL,
			level TEXT NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return insertBatched(conn, len(records), func(i int) error {
		record := records[i]

		return sqlitex.Execute(conn,
			"INSERT INTO members (hash, reputation_score, trust_rating, level) VALUES (?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []any{record.Hash, record.ReputationScore, record.TrustRating, record.Level},
			})
	})
}

// createOrganizationDB creates a SQLite database with a single organizations table.
func (e *Exporter) createOrganizationDB(filename string, records []*types.OrganizationRecord) error {
	conn, err := sqlite.OpenConn(filepath.Join(e.outDir, filename), sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE organizations (
			name TEXT PRIMARY KEY,
			trust_score REAL NOT NULL,
			national_rank INTEGER NOT NULL,
			regional_rank INTEGER NOT NULL,
			category_rank INTEGER NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return insertBatched(conn, len(records), func(i int) error {
		record := records[i]

		return sqlitex.Execute(conn,
			"INSERT INTO organizations (name, trust_score, national_rank, regional_rank, category_rank) "+
				"VALUES (?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []any{
					record.Name, record.TrustScore,
					record.NationalRank, record.RegionalRank, record.CategoryRank,
				},
			})
	})
}

// insertBatched runs the insert function for every record inside
// transactions of at most batchSize rows.
func insertBatched(conn *sqlite.Conn, count int, insert func(i int) error) error {
	const batchSize = 1000

	for i := 0; i < count; i += batchSize {
		end := min(i+batchSize, count)

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for j := i; j < end; j++ {
			if err := insert(j); err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
