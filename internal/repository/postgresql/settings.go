package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/storage"
)

// SettingsRepo stores the session-scoped flags that used to live in
// client-local storage: the active branch id and one-time coachmark
// markers.
type SettingsRepo struct {
	db db.DB
}

func NewSettingsRepo(db db.DB) storage.SettingsRepository {
	return &SettingsRepo{db: db}
}

// Get returns the empty string for unset keys, not an error.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var setting repository.Setting
	err := r.db.Get(ctx, &setting, "SELECT * FROM settings WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO settings (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `, key, value)
	return err
}
