package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	GalleryCategoryInterior   = "interior"
	GalleryCategoryGames      = "games"
	GalleryCategoryTables     = "tables"
	GalleryCategoryExperience = "experience"
	GalleryCategoryFood       = "food"
)

var GalleryCategories = []string{
	GalleryCategoryInterior,
	GalleryCategoryGames,
	GalleryCategoryTables,
	GalleryCategoryExperience,
	GalleryCategoryFood,
}

type GalleryImage struct {
	bun.BaseModel `bun:"table:gallery_images"`

	ID        string    `bun:"id,pk" json:"id"`
	URL       string    `bun:"url,notnull" json:"url"`
	Category  string    `bun:"category,notnull" json:"category"`
	Alt       string    `bun:"alt,notnull" json:"alt"`
	Order     int       `bun:"display_order,notnull,default:0" json:"order"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}

type GalleryImageInput struct {
	URL      *string `json:"url"`
	Category *string `json:"category"`
	Alt      *string `json:"alt"`
	Order    *int    `json:"order"`
}
