package csv_test

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	exportCSV "github.com/civium/civium/internal/export/csv"
	"github.com/civium/civium/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyMemberCSV reads a CSV file and verifies its contents match the expected member records.
func verifyMemberCSV(t *testing.T, path string, expected []*types.MemberRecord) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"hash", "reputation_score", "trust_rating", "level"}, header)

	for _, want := range expected {
		record, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, want.Hash, record[0])
		assert.Equal(t, strconv.Itoa(want.ReputationScore), record[1])
		assert.Equal(t, fmt.Sprintf("%.2f", want.TrustRating), record[2])
		assert.Equal(t, want.Level, record[3])
	}

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err, "expected EOF after last record")
}

// verifyOrganizationCSV reads a CSV file and verifies its contents match the expected organization records.
func verifyOrganizationCSV(t *testing.T, path string, expected []*types.OrganizationRecord) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "trust_score", "national_rank", "regional_rank", "category_rank"}, header)

	for _, want := range expected {
		record, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, want.Name, record[0])
		assert.Equal(t, fmt.Sprintf("%.1f", want.TrustScore), record[1])
		assert.Equal(t, strconv.Itoa(want.NationalRank), record[2])
		assert.Equal(t, strconv.Itoa(want.RegionalRank), record[3])
		assert.Equal(t, strconv.Itoa(want.CategoryRank), record[4])
	}

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err, "expected EOF after last record")
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		memberRecords []*types.MemberRecord
		orgRecords    []*types.OrganizationRecord
		wantErr       bool
	}{
		{
			name: "basic export",
			memberRecords: []*types.MemberRecord{
				{
					Hash:            "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
					ReputationScore: 5400,
					TrustRating:     2.7,
					Level:           "Leader",
				},
				{
					Hash:            "fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210",
					ReputationScore: 320,
					TrustRating:     0.16,
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
			wantErr: false,
		},
		{
			name:          "empty records",
			memberRecords: []*types.MemberRecord{},
			orgRecords:    []*types.OrganizationRecord{},
			wantErr:       false,
		},
		{
			name:          "names with special characters",
			memberRecords: []*types.MemberRecord{},
			orgRecords: []*types.OrganizationRecord{
				{
					Name:         "Housing, Now!",
					TrustScore:   50.0,
					NationalRank: 3,
				},
				{
					Name:         "The \"People's\" Forum",
					TrustScore:   45.5,
					NationalRank: 4,
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tempDir := t.TempDir()

			e := exportCSV.New(tempDir)

			err := e.Export(tt.memberRecords, tt.orgRecords)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			verifyMemberCSV(t, filepath.Join(tempDir, "members.csv"), tt.memberRecords)
			verifyOrganizationCSV(t, filepath.Join(tempDir, "organizations.csv"), tt.orgRecords)
		})
	}
}

func TestExporter_ExportOverwritesExistingFiles(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	// Seed stale files from a previous export
	for _, name := range []string{"members.csv", "organizations.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("stale"), 0o644))
	}

	e := exportCSV.New(tempDir)
	require.NoError(t, e.Export(nil, nil))

	verifyMemberCSV(t, filepath.Join(tempDir, "members.csv"), nil)
	verifyOrganizationCSV(t, filepath.Join(tempDir, "organizations.csv"), nil)
}
