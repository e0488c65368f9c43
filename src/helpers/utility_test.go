package helpers

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocumentID(t *testing.T) {
	hexID := regexp.MustCompile(`^[0-9a-f]{40}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateDocumentID()
		assert.Regexp(t, hexID, id)
		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestTimestamp(t *testing.T) {
	in := time.Date(2026, 8, 26, 10, 30, 5, 999999999, time.UTC)
	assert.Equal(t, "2026-08-26 10:30:05", Timestamp(in))

	// Non-UTC inputs are rendered in UTC
	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, "2026-08-26 10:30:05", Timestamp(in.In(est)))

	// Round-trips through the layout it was written with
	parsed, err := time.Parse("2006-01-02 15:04:05", Timestamp(time.Now()))
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
}
