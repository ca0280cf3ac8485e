package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
)

// Seed inserts the default menu and gallery content when those
// collections are empty. Runs once, synchronously, at startup.
func Seed(ctx context.Context, db *bun.DB, log *logger.Logger) error {
	menuCount, err := db.NewSelect().Model((*models.MenuItem)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if menuCount == 0 {
		log.Info("SEED", "Seeding initial menu items")
		items := defaultMenuItems()
		if _, err := db.NewInsert().Model(&items).Exec(ctx); err != nil {
			return fmt.Errorf("seed menu items: %w", err)
		}
	}

	galleryCount, err := db.NewSelect().Model((*models.GalleryImage)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count gallery images: %w", err)
	}
	if galleryCount == 0 {
		log.Info("SEED", "Seeding initial gallery images")
		images := defaultGalleryImages()
		if _, err := db.NewInsert().Model(&images).Exec(ctx); err != nil {
			return fmt.Errorf("seed gallery images: %w", err)
		}
	}

	return nil
}

func defaultMenuItems() []models.MenuItem {
	type seedItem struct {
		name     string
		price    int
		category string
	}

	seeds := []seedItem{
		{"Filter Coffee", 40, models.MenuCategoryHotBeverages},
		{"Cappuccino", 60, models.MenuCategoryHotBeverages},
		{"Masala Chai", 30, models.MenuCategoryHotBeverages},
		{"Hot Chocolate", 50, models.MenuCategoryHotBeverages},
		{"Fresh Lime Soda", 40, models.MenuCategoryColdBeverages},
		{"Iced Tea", 50, models.MenuCategoryColdBeverages},
		{"Milkshake (Chocolate/Vanilla)", 80, models.MenuCategoryColdBeverages},
		{"Soft Drinks", 40, models.MenuCategoryColdBeverages},
		{"French Fries", 80, models.MenuCategorySnacks},
		{"Samosa (2 pcs)", 40, models.MenuCategorySnacks},
		{"Sandwich", 70, models.MenuCategorySnacks},
		{"Nachos with Cheese", 100, models.MenuCategorySnacks},
		{"Maggi Noodles", 50, models.MenuCategoryQuickMeals},
		{"Pasta", 120, models.MenuCategoryQuickMeals},
		{"Mini Pizza", 150, models.MenuCategoryQuickMeals},
	}

	now := time.Now()
	items := make([]models.MenuItem, 0, len(seeds))
	for _, s := range seeds {
		items = append(items, models.MenuItem{
			ID:        uuid.New().String(),
			Name:      s.name,
			Price:     s.price,
			Category:  s.category,
			Available: true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}

func defaultGalleryImages() []models.GalleryImage {
	type seedImage struct {
		url      string
		category string
		alt      string
		order    int
	}

	seeds := []seedImage{
		{"https://images.unsplash.com/photo-1610890716271-e2fe9e9c0c6d?w=400&h=300&fit=crop", models.GalleryCategoryInterior, "Gameopolis Cafe Interior - Board game cafe atmosphere in T-Nagar Chennai", 1},
		{"https://images.unsplash.com/photo-1611371805429-8b5961bef381?w=400&h=300&fit=crop", models.GalleryCategoryGames, "Board Game Collection - Extensive library of board games at Gameopolis", 2},
		{"https://images.unsplash.com/photo-1632501641765-e568d28b0015?w=400&h=300&fit=crop", models.GalleryCategoryTables, "Gaming Tables - Comfortable gaming tables for board game sessions", 3},
		{"https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=400&h=300&fit=crop", models.GalleryCategoryExperience, "Group Gaming - Friends enjoying board games together at Gameopolis", 4},
		{"https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=400&h=300&fit=crop", models.GalleryCategoryInterior, "Cafe Seating Area - Comfortable seating at Gameopolis board game cafe", 5},
		{"https://images.unsplash.com/photo-1640537908168-a5d4d4e9e6e5?w=400&h=300&fit=crop", models.GalleryCategoryGames, "Strategy Board Games - Collection of strategy games available at Gameopolis", 6},
		{"https://images.unsplash.com/photo-1605901309584-818e25960b8f?w=400&h=300&fit=crop", models.GalleryCategoryTables, "Board Game Setup - Gaming table with board game ready to play", 7},
		{"https://images.unsplash.com/photo-1543269865-cbf427effbad?w=400&h=300&fit=crop", models.GalleryCategoryExperience, "Customer Experience - Social gaming experience at Gameopolis", 8},
	}

	now := time.Now()
	images := make([]models.GalleryImage, 0, len(seeds))
	for _, s := range seeds {
		images = append(images, models.GalleryImage{
			ID:        uuid.New().String(),
			URL:       s.url,
			Category:  s.category,
			Alt:       s.alt,
			Order:     s.order,
			CreatedAt: now,
		})
	}
	return images
}
