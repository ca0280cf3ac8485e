package settings

import (
	"context"
	"errors"
	"time"

	"gameopolis-api/internal/models"
)

type DBLayer interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	InsertSettings(ctx context.Context, settings *models.Settings) error
	UpdateSettings(ctx context.Context, settings *models.Settings) error
}

// Service owns the settings singleton. Get is explicitly
// get-or-create-default: the first read persists the documented defaults
// so every later caller sees one live record.
type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	existing, err := s.DB.GetSettings(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	defaults := models.DefaultSettings()
	defaults.UpdatedAt = time.Now()
	if err := s.DB.InsertSettings(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Update merges the provided fields into the singleton. Top-level fields
// are shallow-merged; the socialMedia and pricing groups are merged
// key-by-key so an update naming one key keeps its siblings.
func (s *Service) Update(ctx context.Context, input models.SettingsInput) (*models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.Phone != nil {
		current.Phone = *input.Phone
	}
	if input.Email != nil {
		current.Email = *input.Email
	}
	if input.Address != nil {
		current.Address = *input.Address
	}
	if input.OpeningTime != nil {
		current.OpeningTime = *input.OpeningTime
	}
	if input.ClosingTime != nil {
		current.ClosingTime = *input.ClosingTime
	}

	if sm := input.SocialMedia; sm != nil {
		if sm.Instagram != nil {
			current.SocialMedia.Instagram = *sm.Instagram
		}
		if sm.Facebook != nil {
			current.SocialMedia.Facebook = *sm.Facebook
		}
		if sm.Twitter != nil {
			current.SocialMedia.Twitter = *sm.Twitter
		}
	}

	if p := input.Pricing; p != nil {
		if p.Wednesday != nil {
			if *p.Wednesday < 0 {
				return nil, models.NewValidationError("pricing.wednesday cannot be negative")
			}
			current.Pricing.Wednesday = *p.Wednesday
		}
		if p.Weekday != nil {
			if *p.Weekday < 0 {
				return nil, models.NewValidationError("pricing.weekday cannot be negative")
			}
			current.Pricing.Weekday = *p.Weekday
		}
		if p.Weekend != nil {
			if *p.Weekend < 0 {
				return nil, models.NewValidationError("pricing.weekend cannot be negative")
			}
			current.Pricing.Weekend = *p.Weekend
		}
	}

	current.UpdatedAt = time.Now()
	if err := s.DB.UpdateSettings(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
