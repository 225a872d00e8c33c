package database

import (
	"context"
	"database/sql"

	"github.com/jask/tuikit/internal/database/repository"
	"github.com/jask/tuikit/internal/fixtures"
)

// SeedDefaults inserts the built-in sample users into an empty users
// table. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	users := repository.NewUserRepo(db)
	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return ImportUsers(ctx, db, fixtures.Builtin())
}

// ImportUsers upserts users in one transaction, keeping their order.
func ImportUsers(ctx context.Context, db *sql.DB, users []fixtures.User) error {
	now := Now()
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewUserRepoTx(tx)
		for i, u := range users {
			row := repository.User{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				Status:    u.Status,
				SortOrder: i,
				JoinDate:  nullTime(u.JoinDate),
				LastLogin: nullTime(u.LastLogin),
				UpdatedAt: now,
			}
			if row.ID == "" {
				row.ID = fixtures.UserID(u.Email)
			}
			if row.Status == "" {
				row.Status = fixtures.StatusActive
			}
			if err := repo.Upsert(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadUsers returns all users as fixtures, in stored order.
func LoadUsers(ctx context.Context, db *sql.DB) ([]fixtures.User, error) {
	rows, err := repository.NewUserRepo(db).List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]fixtures.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, fixtures.User{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Role:      r.Role,
			Status:    r.Status,
			JoinDate:  r.JoinDate.Time,
			LastLogin: r.LastLogin.Time,
		})
	}
	return out, nil
}
