package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gameopolis-api/internal/kafka"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
)

type DBLayer interface {
	ListEvents(ctx context.Context, status, eventType string) ([]models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, event models.Event) error
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	RegisterAttendee(ctx context.Context, id string) (int64, error)
}

type Notifier interface {
	Publish(topic, key string, value []byte) error
}

type Service struct {
	DB       DBLayer
	Notifier Notifier
	Logger   *logger.Logger
}

func NewService(db DBLayer, notifier Notifier, log *logger.Logger) *Service {
	return &Service{DB: db, Notifier: notifier, Logger: log}
}

// List returns events sorted by date, optionally filtered by exact
// status and type.
func (s *Service) List(ctx context.Context, status, eventType string) ([]models.Event, error) {
	if status != "" && !models.ValidEnum(status, models.EventStatuses) {
		return nil, models.NewValidationError("invalid status filter %q", status)
	}
	if eventType != "" && !models.ValidEnum(eventType, models.EventTypes) {
		return nil, models.NewValidationError("invalid type filter %q", eventType)
	}
	return s.DB.ListEvents(ctx, status, eventType)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Event, error) {
	return s.DB.GetEventByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input models.EventInput) (*models.Event, error) {
	event := models.Event{
		ID:         uuid.New().String(),
		Type:       models.EventTypeCasual,
		Image:      models.DefaultEventImage,
		Status:     models.EventStatusActive,
		Registered: 0,
	}
	applyEventInput(&event, input)

	if err := validateEvent(&event); err != nil {
		return nil, err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.DB.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *Service) Update(ctx context.Context, id string, input models.EventInput) (*models.Event, error) {
	event, err := s.DB.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyEventInput(event, input)
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now()
	if err := s.DB.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.DB.DeleteEvent(ctx, id)
}

// Register increments the registration count by one. The store performs
// the compare-and-increment atomically so concurrent registrations can
// never push registered past capacity.
func (s *Service) Register(ctx context.Context, id string) (*models.Event, error) {
	rows, err := s.DB.RegisterAttendee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to register for event: %w", err)
	}
	if rows == 0 {
		// Either the event does not exist or it is full.
		if _, err := s.DB.GetEventByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, models.ErrCapacityFull
	}

	event, err := s.DB.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyRegistration(event)
	return event, nil
}

func (s *Service) notifyRegistration(event *models.Event) {
	if s.Notifier == nil {
		return
	}
	value, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.Notifier.Publish(kafka.TopicEventRegistration, event.ID, value); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish registration for event %s: %v", event.ID, err))
	}
}

func applyEventInput(event *models.Event, input models.EventInput) {
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Time != nil {
		event.Time = *input.Time
	}
	if input.Duration != nil {
		event.Duration = *input.Duration
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Type != nil {
		event.Type = *input.Type
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
	if input.Image != nil && *input.Image != "" {
		event.Image = *input.Image
	}
	if input.Status != nil {
		event.Status = *input.Status
	}
}

func validateEvent(event *models.Event) error {
	switch {
	case event.Name == "":
		return models.NewValidationError("name is required")
	case event.Date == "":
		return models.NewValidationError("date is required")
	case event.Time == "":
		return models.NewValidationError("time is required")
	case event.Description == "":
		return models.NewValidationError("description is required")
	case event.Duration <= 0:
		return models.NewValidationError("duration must be a positive number of hours")
	case event.Price < 0:
		return models.NewValidationError("price cannot be negative")
	case event.Capacity <= 0:
		return models.NewValidationError("capacity must be positive")
	case event.Registered > event.Capacity:
		return models.NewValidationError("registered cannot exceed capacity")
	}

	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return models.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if !models.ValidEnum(event.Type, models.EventTypes) {
		return models.NewValidationError("invalid event type %q", event.Type)
	}
	if !models.ValidEnum(event.Status, models.EventStatuses) {
		return models.NewValidationError("invalid event status %q", event.Status)
	}
	return nil
}
