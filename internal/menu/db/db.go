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

func (d *DB) ListMenuItems(ctx context.Context, category string, available *bool) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	q := d.Bun.NewSelect().Model(&items)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if available != nil {
		q = q.Where("available = ?", *available)
	}
	if err := q.Order("created_at ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

func (d *DB) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := d.Bun.NewSelect().
		Model(&item).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *DB) CreateMenuItem(ctx context.Context, item models.MenuItem) error {
	_, err := d.Bun.NewInsert().Model(&item).Exec(ctx)
	return err
}

func (d *DB) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	res, err := d.Bun.NewUpdate().
		Model(&item).
		Column("name", "price", "category", "description", "image", "available", "updated_at").
		Where("id = ?", item.ID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DB) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := d.Bun.NewDelete().
		Model((*models.MenuItem)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}
