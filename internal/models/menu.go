package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	MenuCategoryHotBeverages  = "hot-beverages"
	MenuCategoryColdBeverages = "cold-beverages"
	MenuCategorySnacks        = "snacks"
	MenuCategoryQuickMeals    = "quick-meals"
)

// MenuCategories is ordered; the grouped menu response always contains
// every key, empty or not.
var MenuCategories = []string{
	MenuCategoryHotBeverages,
	MenuCategoryColdBeverages,
	MenuCategorySnacks,
	MenuCategoryQuickMeals,
}

type MenuItem struct {
	bun.BaseModel `bun:"table:menu_items"`

	ID          string    `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Price       int       `bun:"price,notnull" json:"price"`
	Category    string    `bun:"category,notnull" json:"category"`
	Description string    `bun:"description" json:"description"`
	Image       string    `bun:"image" json:"image"`
	Available   bool      `bun:"available,notnull" json:"available"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

type MenuItemInput struct {
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Available   *bool   `json:"available"`
}

// GroupedMenu maps every menu category to its items in persisted order.
type GroupedMenu map[string][]MenuItem
