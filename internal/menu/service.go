package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gameopolis-api/internal/models"
)

type DBLayer interface {
	ListMenuItems(ctx context.Context, category string, available *bool) ([]models.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// List returns the menu grouped into the four fixed category keys. Every
// key is present even when its category has no items, so clients can
// render section headings unconditionally.
func (s *Service) List(ctx context.Context, category string, available *bool) (models.GroupedMenu, int, error) {
	if category != "" && !models.ValidEnum(category, models.MenuCategories) {
		return nil, 0, models.NewValidationError("invalid category filter %q", category)
	}

	items, err := s.DB.ListMenuItems(ctx, category, available)
	if err != nil {
		return nil, 0, err
	}

	grouped := make(models.GroupedMenu, len(models.MenuCategories))
	for _, c := range models.MenuCategories {
		grouped[c] = []models.MenuItem{}
	}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, len(items), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.DB.GetMenuItemByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		ID:        uuid.New().String(),
		Available: true,
	}
	applyMenuInput(&item, input)

	if err := validateMenuItem(&item); err != nil {
		return nil, err
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.DB.CreateMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

func (s *Service) Update(ctx context.Context, id string, input models.MenuItemInput) (*models.MenuItem, error) {
	item, err := s.DB.GetMenuItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyMenuInput(item, input)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now()
	if err := s.DB.UpdateMenuItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.DB.DeleteMenuItem(ctx, id)
}

func applyMenuInput(item *models.MenuItem, input models.MenuItemInput) {
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
}

func validateMenuItem(item *models.MenuItem) error {
	switch {
	case item.Name == "":
		return models.NewValidationError("name is required")
	case item.Price < 0:
		return models.NewValidationError("price cannot be negative")
	}
	if !models.ValidEnum(item.Category, models.MenuCategories) {
		return models.NewValidationError("invalid menu category %q", item.Category)
	}
	return nil
}
