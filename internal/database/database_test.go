package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/tuikit/internal/database/repository"
	"github.com/jask/tuikit/internal/fixtures"
)

func openTestDB(t *testing.T) (context.Context, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx, filepath.Join(t.TempDir(), "test.db")
}

func mustOpen(t *testing.T, ctx context.Context, path, migrations string) *sql.DB {
	t.Helper()
	db, err := Open(ctx, path, migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrationsFromDirectory(t *testing.T) {
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	ctx, dbPath := openTestDB(t)
	db := mustOpen(t, ctx, dbPath, migrations)

	// Applying twice is a no-op.
	require.NoError(t, RunMigrationsWithDB(db, migrations))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE join_date IS NULL").Scan(&count))
	require.Zero(t, count)
}

func TestOpenMissingMigrations(t *testing.T) {
	ctx, dbPath := openTestDB(t)
	_, err := Open(ctx, dbPath, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	ctx, dbPath := openTestDB(t)
	db := mustOpen(t, ctx, dbPath, "")

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	users, err := LoadUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 5)
	require.Equal(t, fixtures.Builtin(), users)
}

func TestImportUsersUpserts(t *testing.T) {
	ctx, dbPath := openTestDB(t)
	db := mustOpen(t, ctx, dbPath, "")

	before := Now()
	require.NoError(t, ImportUsers(ctx, db, []fixtures.User{
		{Name: "Bob", Email: "bob@example.com", Role: "User"},
		{Name: "Ann", Email: "ann@example.com", Role: "Admin", Status: fixtures.StatusPending},
	}))
	require.NoError(t, ImportUsers(ctx, db, []fixtures.User{
		{Name: "Bobby", Email: "bob@example.com", Role: "User", Status: fixtures.StatusInactive},
	}))

	repo := repository.NewUserRepo(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	bob := rows[0] // sort_order 0 from the second import
	require.Equal(t, "Bobby", bob.Name)
	require.Equal(t, fixtures.StatusInactive, bob.Status)
	require.Equal(t, fixtures.UserID("bob@example.com"), bob.ID)
	require.False(t, bob.JoinDate.Valid)
	require.False(t, bob.UpdatedAt.Before(before))
	require.Equal(t, "Ann", rows[1].Name)
}

func TestImportUsersKeepsActivityTimes(t *testing.T) {
	ctx, dbPath := openTestDB(t)
	db := mustOpen(t, ctx, dbPath, "")

	joined := time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ImportUsers(ctx, db, []fixtures.User{
		{Name: "Charlie Brown", Email: "charlie@example.com", JoinDate: joined},
	}))
	users, err := LoadUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.True(t, joined.Equal(users[0].JoinDate))
	require.True(t, users[0].LastLogin.IsZero())
}

func TestImportUsersRejectsUnknownStatus(t *testing.T) {
	ctx, dbPath := openTestDB(t)
	db := mustOpen(t, ctx, dbPath, "")

	err := ImportUsers(ctx, db, []fixtures.User{
		{Name: "Ann", Email: "ann@example.com", Status: "active"},
		{Name: "Eve", Email: "eve@example.com", Status: "banned"},
	})
	require.Error(t, err)

	users, err := LoadUsers(ctx, db)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestNowTruncatesToSeconds(t *testing.T) {
	now := Now()
	require.Equal(t, time.UTC, now.Location())
	require.Zero(t, now.Nanosecond())
}
