package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "kdm_backend/internals/features/students/students/model"
)

func sampleDocument() *Document {
	return &Document{
		Version:    BackupVersion,
		ExportedAt: time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC),
		Students: []studentModel.StudentModel{
			{
				StudentID:    uuid.MustParse("6f1c8dfc-45f4-4df0-9f5a-1c2f3a4b5c6d"),
				StudentName:  "Ahmad",
				StudentLevel: "Tahfizh 1",
			},
		},
	}
}

// export -> import -> export harus identik byte per byte
func TestBackupRoundTripStable(t *testing.T) {
	first, err := Marshal(sampleDocument())
	require.NoError(t, err)

	parsed, err := Parse(first)
	require.NoError(t, err)

	second, err := Marshal(parsed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"version": 1, "kdm_students": [`))
	assert.Error(t, err)
}

func TestParseUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte(`{"version": 99}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParseKeepsCollections(t *testing.T) {
	payload, err := Marshal(sampleDocument())
	require.NoError(t, err)

	doc, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, doc.Students, 1)
	assert.Equal(t, "Ahmad", doc.Students[0].StudentName)
}
