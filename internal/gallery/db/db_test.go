package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"gameopolis-api/internal/gallery/db"
	"gameopolis-api/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.GalleryImage)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create gallery_images table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func testImage(category string, order int) models.GalleryImage {
	return models.GalleryImage{
		ID:        uuid.New().String(),
		URL:       "https://images.unsplash.com/photo-cafe-" + uuid.New().String()[:8],
		Category:  category,
		Alt:       "Cafe photo",
		Order:     order,
		CreatedAt: time.Now(),
	}
}

func TestListImagesOrderedByDisplayOrder(t *testing.T) {
	galleryDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()

	third := testImage(models.GalleryCategoryInterior, 3)
	first := testImage(models.GalleryCategoryGames, 1)
	second := testImage(models.GalleryCategoryInterior, 2)
	for _, img := range []models.GalleryImage{third, first, second} {
		require.NoError(t, galleryDB.CreateImage(ctx, img))
	}

	images, err := galleryDB.ListImages(ctx, "")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, first.ID, images[0].ID)
	assert.Equal(t, second.ID, images[1].ID)
	assert.Equal(t, third.ID, images[2].ID)

	interior, err := galleryDB.ListImages(ctx, models.GalleryCategoryInterior)
	require.NoError(t, err)
	require.Len(t, interior, 2)
	assert.Equal(t, second.ID, interior[0].ID)
}

func TestGetUpdateDeleteImage(t *testing.T) {
	galleryDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()
	image := testImage(models.GalleryCategoryFood, 1)
	require.NoError(t, galleryDB.CreateImage(ctx, image))

	found, err := galleryDB.GetImageByID(ctx, image.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GalleryCategoryFood, found.Category)

	found.Alt = "Fresh snacks at the counter"
	found.Order = 5
	require.NoError(t, galleryDB.UpdateImage(ctx, *found))

	updated, err := galleryDB.GetImageByID(ctx, image.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh snacks at the counter", updated.Alt)
	assert.Equal(t, 5, updated.Order)

	require.NoError(t, galleryDB.DeleteImage(ctx, image.ID))
	_, err = galleryDB.GetImageByID(ctx, image.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, galleryDB.DeleteImage(ctx, image.ID), models.ErrNotFound)
	missing := testImage(models.GalleryCategoryGames, 1)
	assert.ErrorIs(t, galleryDB.UpdateImage(ctx, missing), models.ErrNotFound)
}
