package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sellfurniture/marketplace-be/internal/database"
)

// newTestDB opens a fresh in-memory database with the full schema.
// Capping the pool at one connection keeps every query on the same
// in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
