package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jask/tuikit/internal/config"
	"github.com/jask/tuikit/internal/database"
	"github.com/jask/tuikit/internal/fixtures"
)

// ErrUnknownSource is returned for a data source name LoadUsers does not
// know.
var ErrUnknownSource = errors.New("unknown data source")

// LoadUsers reads the demo users from the configured source. The sqlite
// source is migrated and seeded with the built-in users when empty.
func LoadUsers(ctx context.Context, cfg config.DataConfig, logger *slog.Logger) ([]fixtures.User, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var (
		users []fixtures.User
		err   error
	)
	switch cfg.Source {
	case config.SourceBuiltin, "":
		users = fixtures.Builtin()
	case config.SourceTOML:
		users, err = fixtures.LoadTOML(cfg.Path)
	case config.SourceSQLite:
		users, err = loadSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load users from %s: %w", cfg.Source, err)
	}
	logger.Info("users loaded", "source", cfg.Source, "path", cfg.Path, "count", len(users))
	return users, nil
}

func loadSQLite(ctx context.Context, cfg config.DataConfig) ([]fixtures.User, error) {
	db, err := database.Open(ctx, cfg.Path, cfg.Migrations)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return database.LoadUsers(ctx, db)
}
