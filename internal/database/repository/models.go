package repository

import (
	"database/sql"
	"time"
)

// User is a users row. JoinDate and LastLogin are NULL when unknown.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Status    string
	SortOrder int
	JoinDate  sql.NullTime
	LastLogin sql.NullTime
	CreatedAt time.Time
	UpdatedAt time.Time
}
