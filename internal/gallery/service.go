package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gameopolis-api/internal/models"
)

type DBLayer interface {
	ListImages(ctx context.Context, category string) ([]models.GalleryImage, error)
	GetImageByID(ctx context.Context, id string) (*models.GalleryImage, error)
	CreateImage(ctx context.Context, image models.GalleryImage) error
	UpdateImage(ctx context.Context, image models.GalleryImage) error
	DeleteImage(ctx context.Context, id string) error
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// List returns images sorted by display order, oldest first within the
// same order value.
func (s *Service) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	if category != "" && !models.ValidEnum(category, models.GalleryCategories) {
		return nil, models.NewValidationError("invalid category filter %q", category)
	}
	return s.DB.ListImages(ctx, category)
}

func (s *Service) Get(ctx context.Context, id string) (*models.GalleryImage, error) {
	return s.DB.GetImageByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input models.GalleryImageInput) (*models.GalleryImage, error) {
	image := models.GalleryImage{
		ID: uuid.New().String(),
	}
	applyGalleryInput(&image, input)

	if err := validateImage(&image); err != nil {
		return nil, err
	}

	image.CreatedAt = time.Now()
	if err := s.DB.CreateImage(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return &image, nil
}

func (s *Service) Update(ctx context.Context, id string, input models.GalleryImageInput) (*models.GalleryImage, error) {
	image, err := s.DB.GetImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyGalleryInput(image, input)
	if err := validateImage(image); err != nil {
		return nil, err
	}

	if err := s.DB.UpdateImage(ctx, *image); err != nil {
		return nil, fmt.Errorf("failed to update gallery image: %w", err)
	}
	return image, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.DB.DeleteImage(ctx, id)
}

func applyGalleryInput(image *models.GalleryImage, input models.GalleryImageInput) {
	if input.URL != nil {
		image.URL = *input.URL
	}
	if input.Category != nil {
		image.Category = *input.Category
	}
	if input.Alt != nil {
		image.Alt = *input.Alt
	}
	if input.Order != nil {
		image.Order = *input.Order
	}
}

func validateImage(image *models.GalleryImage) error {
	switch {
	case image.URL == "":
		return models.NewValidationError("url is required")
	case image.Alt == "":
		return models.NewValidationError("alt text is required")
	}
	if !models.ValidEnum(image.Category, models.GalleryCategories) {
		return models.NewValidationError("invalid gallery category %q", image.Category)
	}
	return nil
}
