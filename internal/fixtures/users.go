// Package fixtures provides the sample users shown in the gallery.
package fixtures

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Statuses a user can have. Each maps to a badge variant in the gallery.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// ErrNoUsers is returned when a fixture file contains no users.
var ErrNoUsers = errors.New("fixture has no users")

// User is one row of demo data. JoinDate and LastLogin are zero when
// unknown.
type User struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Email     string    `toml:"email"`
	Role      string    `toml:"role"`
	Status    string    `toml:"status"`
	JoinDate  time.Time `toml:"join_date"`
	LastLogin time.Time `toml:"last_login"`
}

// UserID derives a stable id from an email address.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("user:"+strings.ToLower(email))).String()
}

// Builtin returns a fresh copy of the built-in users.
func Builtin() []User {
	users := []User{
		{Name: "John Doe", Email: "john@example.com", Role: "Admin", Status: StatusActive,
			JoinDate: date(2023, 1, 15), LastLogin: at(2024, 1, 15, 10, 30)},
		{Name: "Jane Smith", Email: "jane@example.com", Role: "User", Status: StatusActive,
			JoinDate: date(2023, 3, 22), LastLogin: at(2024, 1, 14, 15, 45)},
		{Name: "Bob Johnson", Email: "bob@example.com", Role: "User", Status: StatusInactive,
			JoinDate: date(2023, 2, 10), LastLogin: at(2024, 1, 10, 9, 15)},
		{Name: "Alice Williams", Email: "alice@example.com", Role: "Moderator", Status: StatusPending,
			JoinDate: date(2024, 1, 1), LastLogin: at(2024, 1, 13, 14, 20)},
		{Name: "Charlie Brown", Email: "charlie@example.com", Role: "User", Status: StatusActive,
			JoinDate: date(2023, 12, 5), LastLogin: at(2024, 1, 15, 11, 0)},
	}
	for i := range users {
		users[i].ID = UserID(users[i].Email)
	}
	return users
}

func date(y int, m time.Month, d int) time.Time { return at(y, m, d, 0, 0) }

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

type file struct {
	Users []User `toml:"users"`
}

// LoadTOML reads users from a file of [[users]] tables. Missing ids are
// derived from the email; missing statuses default to active.
func LoadTOML(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseTOML(data)
}

// ParseTOML decodes users from TOML bytes.
func ParseTOML(data []byte) ([]User, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode fixtures: unknown key %q", undecoded[0].String())
	}
	if len(f.Users) == 0 {
		return nil, ErrNoUsers
	}
	for i := range f.Users {
		u := &f.Users[i]
		if strings.TrimSpace(u.Name) == "" {
			return nil, fmt.Errorf("decode fixtures: user %d has no name", i+1)
		}
		if u.ID == "" {
			u.ID = UserID(u.Email)
		}
		if u.Status == "" {
			u.Status = StatusActive
		}
	}
	return f.Users, nil
}

// StatusVariant maps a status to a badge variant name. Anything other
// than active or inactive is drawn as secondary.
func StatusVariant(status string) string {
	switch status {
	case StatusActive:
		return "default"
	case StatusInactive:
		return "destructive"
	default:
		return "secondary"
	}
}
