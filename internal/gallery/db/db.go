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

func (d *DB) ListImages(ctx context.Context, category string) ([]models.GalleryImage, error) {
	images := make([]models.GalleryImage, 0)
	q := d.Bun.NewSelect().Model(&images)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("display_order ASC", "created_at ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return images, nil
}

func (d *DB) GetImageByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := d.Bun.NewSelect().
		Model(&image).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (d *DB) CreateImage(ctx context.Context, image models.GalleryImage) error {
	_, err := d.Bun.NewInsert().Model(&image).Exec(ctx)
	return err
}

func (d *DB) UpdateImage(ctx context.Context, image models.GalleryImage) error {
	res, err := d.Bun.NewUpdate().
		Model(&image).
		Column("url", "category", "alt", "display_order").
		Where("id = ?", image.ID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DB) DeleteImage(ctx context.Context, id string) error {
	res, err := d.Bun.NewDelete().
		Model((*models.GalleryImage)(nil)).
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
