package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/civium/civium/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// verifyMemberDB reads a SQLite database and verifies its contents match the expected member records.
func verifyMemberDB(t *testing.T, path string, expected []*types.MemberRecord) {
	t.Helper()

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	var records []*types.MemberRecord

	err = sqlitex.ExecuteTransient(conn,
		"SELECT hash, reputation_score, trust_rating, level FROM members ORDER BY hash",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				records = append(records, &types.MemberRecord{
					Hash:            stmt.ColumnText(0),
					ReputationScore: stmt.ColumnInt(1),
					TrustRating:     stmt.ColumnFloat(2),
					Level:           stmt.ColumnText(3),
				})
				return nil
			},
		})
	require.NoError(t, err)

	require.Len(t, records, len(expected), "record count mismatch")

	for i, want := range expected {
		assert.Equal(t, want.Hash, records[i].Hash)
		assert.Equal(t, want.ReputationScore, records[i].ReputationScore)
		assert.InDelta(t, want.TrustRating, records[i].TrustRating, 0.001)
		assert.Equal(t, want.Level, records[i].Level)
	}
}

// verifyOrganizationDB reads a SQLite database and verifies its contents match the expected organization records.
func verifyOrganizationDB(t *testing.T, path string, expected []*types.OrganizationRecord) {
	t.Helper()

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	var records []*types.OrganizationRecord

	err = sqlitex.ExecuteTransient(conn,
		"SELECT name, trust_score, national_rank, regional_rank, category_rank FROM organizations ORDER BY name",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				records = append(records, &types.OrganizationRecord{
					Name:         stmt.ColumnText(0),
					TrustScore:   stmt.ColumnFloat(1),
					NationalRank: stmt.ColumnInt(2),
					RegionalRank: stmt.ColumnInt(3),
					CategoryRank: stmt.ColumnInt(4),
				})
				return nil
			},
		})
	require.NoError(t, err)

	require.Len(t, records, len(expected), "record count mismatch")

	for i, want := range expected {
		assert.Equal(t, want.Name, records[i].Name)
		assert.InDelta(t, want.TrustScore, records[i].TrustScore, 0.001)
		assert.Equal(t, want.NationalRank, records[i].NationalRank)
		assert.Equal(t, want.RegionalRank, records[i].RegionalRank)
		assert.Equal(t, want.CategoryRank, records[i].CategoryRank)
	}
}

func TestExporter_Export(t *testing.T) {
	tests := []struct {
		name          string
		memberRecords []*types.MemberRecord
		orgRecords    []*types.OrganizationRecord
	}{
		{
			name: "basic export",
			memberRecords: []*types.MemberRecord{
				{
					Hash:            "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
					ReputationScore: 2750,
					TrustRating:     1.38,
					Level:           "Activist",
				},
				{
					Hash:            "fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210",
					ReputationScore: 120,
					TrustRating:     0.06,
					Level:           "Newcomer",
				},
			},
			orgRecords: []*types.OrganizationRecord{
				{
					Name:         "Clean Rivers Coalition",
					TrustScore:   87.4,
					NationalRank: 1,
					RegionalRank: 1,
					CategoryRank: 2,
				},
				{
					Name:         "Open Ballot Initiative",
					TrustScore:   61.0,
					NationalRank: 14,
				},
			},
		},
		{
			name:          "empty records",
			memberRecords: []*types.MemberRecord{},
			orgRecords:    []*types.OrganizationRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			e := New(tempDir)

			require.NoError(t, e.Export(tt.memberRecords, tt.orgRecords))

			verifyMemberDB(t, filepath.Join(tempDir, "members.db"), tt.memberRecords)
			verifyOrganizationDB(t, filepath.Join(tempDir, "organizations.db"), tt.orgRecords)
		})
	}
}

func TestInsertBatchedManyRecords(t *testing.T) {
	tempDir := t.TempDir()

	// More records than a single insert batch
	records := make([]*types.MemberRecord, 2500)
	for i := range records {
		records[i] = &types.MemberRecord{
			Hash:            fmt.Sprintf("hash-%04d", i),
			ReputationScore: i,
			Level:           "Newcomer",
		}
	}

	e := New(tempDir)
	require.NoError(t, e.Export(records, nil))

	conn, err := sqlite.OpenConn(filepath.Join(tempDir, "members.db"), sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	var count int

	err = sqlitex.ExecuteTransient(conn, "SELECT COUNT(*) FROM members", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt(0)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, len(records), count)
}
