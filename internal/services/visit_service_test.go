package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRecord(t *testing.T) {
	db := newTestDB(t)
	s := NewVisitService(db)

	visit, err := s.Record("203.0.113.7", "Mozilla/5.0")
	require.NoError(t, err)
	assert.NotEmpty(t, visit.ID)
	assert.Equal(t, "203.0.113.7", visit.IP)
	assert.Equal(t, "Mozilla/5.0", visit.UserAgent)
	assert.False(t, visit.VisitedAt.IsZero())

	// Visits are write-only in the service; check the row directly.
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM visits WHERE id = ?", visit.ID).Scan(&n))
	assert.Equal(t, 1, n)
}
