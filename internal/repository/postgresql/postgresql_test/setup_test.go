package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
)

// openTestDB connects to the database named by TEST_DATABASE_URL. Tests that
// need a live database skip when it is unset.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"refresh_tokens", "leaves", "attendance_adjustments", "attendance_sessions", "users"} {
		_, err := db.Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, db *database.DB, username string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, 'x', 'EMPLOYEE')
	`, id, username)
	require.NoError(t, err)
	return id
}
