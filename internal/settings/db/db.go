package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"gameopolis-api/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// GetSettings returns the singleton row, ErrNotFound before first write.
func (d *DB) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := d.Bun.NewSelect().
		Model(&settings).
		Order("id ASC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (d *DB) InsertSettings(ctx context.Context, settings *models.Settings) error {
	_, err := d.Bun.NewInsert().Model(settings).Exec(ctx)
	return err
}

func (d *DB) UpdateSettings(ctx context.Context, settings *models.Settings) error {
	_, err := d.Bun.NewUpdate().
		Model(settings).
		WherePK().
		Exec(ctx)
	return err
}
