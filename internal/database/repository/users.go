package repository

import (
	"context"
	"database/sql"
)

// execQuerier is satisfied by both *sql.DB and *sql.Tx.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserRepo reads and writes the users table.
type UserRepo struct {
	db execQuerier
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// NewUserRepoTx binds the repo to an open transaction.
func NewUserRepoTx(tx *sql.Tx) *UserRepo { return &UserRepo{db: tx} }

// Upsert inserts u or, when its id exists, overwrites it. UpdatedAt is
// written as given; created_at keeps its first value.
func (r *UserRepo) Upsert(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO users(id, name, email, role, status, sort_order, join_date, last_login, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		email=excluded.email,
		role=excluded.role,
		status=excluded.status,
		sort_order=excluded.sort_order,
		join_date=excluded.join_date,
		last_login=excluded.last_login,
		updated_at=excluded.updated_at;
	`, u.ID, u.Name, u.Email, u.Role, u.Status, u.SortOrder, u.JoinDate, u.LastLogin, u.UpdatedAt)
	return err
}

// List returns every user in stored order.
func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, role, status, sort_order, join_date, last_login, created_at, updated_at
	FROM users ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.SortOrder,
			&u.JoinDate, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
