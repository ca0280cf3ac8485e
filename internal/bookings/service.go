package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gameopolis-api/internal/kafka"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/models"
)

type DBLayer interface {
	ListBookings(ctx context.Context, status string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBookingStatus(ctx context.Context, bookingID, status string, updatedAt time.Time) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

type Notifier interface {
	Publish(topic, key string, value []byte) error
}

type Service struct {
	DB         DBLayer
	Notifier   Notifier
	Logger     *logger.Logger
	MaxPlayers int
}

func NewService(db DBLayer, notifier Notifier, log *logger.Logger, maxPlayers int) *Service {
	return &Service{DB: db, Notifier: notifier, Logger: log, MaxPlayers: maxPlayers}
}

// Create validates a public booking submission, allocates the next BKnnn
// identifier and persists the booking as pending. Identifier allocation
// happens inside the store under a uniqueness guard, so concurrent
// submissions never share a sequence number.
func (s *Service) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Date:      input.Date,
		Time:      input.Time,
		Players:   input.Players,
		Notes:     input.Notes,
		Status:    models.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.DB.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.LogBooking("CREATE", booking.BookingID, fmt.Sprintf("table for %d on %s %s", booking.Players, booking.Date, booking.Time))
	s.notify(kafka.TopicBookingCreated, booking)
	return booking, nil
}

// List returns bookings newest-created first, optionally filtered by
// exact status match.
func (s *Service) List(ctx context.Context, status string) ([]models.Booking, error) {
	if status != "" && !models.ValidEnum(status, models.BookingStatuses) {
		return nil, models.NewValidationError("invalid status filter %q", status)
	}
	return s.DB.ListBookings(ctx, status)
}

func (s *Service) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.DB.GetBookingByID(ctx, bookingID)
}

// SetStatus applies the booking state machine:
// pending -> confirmed | cancelled; confirmed -> cancelled | completed.
// Cancelled and completed are terminal; backward moves are rejected.
func (s *Service) SetStatus(ctx context.Context, bookingID, newStatus string) (*models.Booking, error) {
	if !models.ValidEnum(newStatus, models.BookingStatuses) {
		return nil, models.NewValidationError("invalid booking status %q", newStatus)
	}

	booking, err := s.DB.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	allowed := models.BookingTransitions[booking.Status]
	if len(allowed) == 0 {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, models.ErrTerminalStatus)
	}
	if !models.ValidEnum(newStatus, allowed) {
		return nil, fmt.Errorf("cannot move booking %s from %s to %s: %w",
			bookingID, booking.Status, newStatus, models.ErrInvalidTransition)
	}

	booking.Status = newStatus
	booking.UpdatedAt = time.Now()
	if err := s.DB.UpdateBookingStatus(ctx, bookingID, newStatus, booking.UpdatedAt); err != nil {
		return nil, err
	}

	s.Logger.LogBooking("STATUS", bookingID, "now "+newStatus)
	s.notify(kafka.TopicBookingStatus, booking)
	return booking, nil
}

func (s *Service) Delete(ctx context.Context, bookingID string) error {
	if err := s.DB.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}
	s.Logger.LogBooking("DELETE", bookingID, "removed")
	return nil
}

func (s *Service) validateInput(input models.BookingInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return models.NewValidationError("name is required")
	case strings.TrimSpace(input.Phone) == "":
		return models.NewValidationError("phone is required")
	case strings.TrimSpace(input.Email) == "":
		return models.NewValidationError("email is required")
	case input.Date == "":
		return models.NewValidationError("date is required")
	case input.Time == "":
		return models.NewValidationError("time is required")
	case input.Players <= 0:
		return models.NewValidationError("players must be positive")
	}

	if s.MaxPlayers > 0 && input.Players > s.MaxPlayers {
		return models.NewValidationError("players cannot exceed %d per table", s.MaxPlayers)
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return models.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if input.Date < time.Now().Format("2006-01-02") {
		return models.NewValidationError("booking date cannot be in the past")
	}

	if _, err := time.Parse("15:04", input.Time); err != nil {
		return models.NewValidationError("time must be in HH:MM format")
	}
	return nil
}

func (s *Service) notify(topic string, booking *models.Booking) {
	if s.Notifier == nil {
		return
	}
	value, err := json.Marshal(booking)
	if err != nil {
		return
	}
	if err := s.Notifier.Publish(topic, booking.BookingID, value); err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish %s for %s: %v", topic, booking.BookingID, err))
	}
}
