package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"gameopolis-api/internal/models"
)

// allocateRetries bounds the identifier retry loop when concurrent
// creates race for the same sequence number.
const allocateRetries = 3

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListBookings(ctx context.Context, status string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	q := d.Bun.NewSelect().Model(&bookings)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DB) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("booking_id = ?", bookingID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking assigns the next BK identifier and inserts the booking.
// A plain read-max-then-insert would hand the same number to concurrent
// submissions, so the insert relies on the booking_id primary key for
// uniqueness and retries with a fresh sequence number on conflict.
func (d *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	var lastErr error
	for attempt := 0; attempt < allocateRetries; attempt++ {
		seq, err := d.maxSequence(ctx)
		if err != nil {
			return fmt.Errorf("failed to read booking sequence: %w", err)
		}

		booking.BookingID = FormatBookingID(seq + 1)
		_, err = d.Bun.NewInsert().Model(booking).Exec(ctx)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("booking id allocation lost %d races (%v): %w", allocateRetries, lastErr, models.ErrConflict)
}

func (d *DB) UpdateBookingStatus(ctx context.Context, bookingID, status string, updatedAt time.Time) error {
	res, err := d.Bun.NewUpdate().
		Model((*models.Booking)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", updatedAt).
		Where("booking_id = ?", bookingID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DB) DeleteBooking(ctx context.Context, bookingID string) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Booking)(nil)).
		Where("booking_id = ?", bookingID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// maxSequence returns the highest numeric suffix among BKnnn identifiers,
// or 0 when there are no bookings. SUBSTR/CAST work on both SQLite and
// Postgres.
func (d *DB) maxSequence(ctx context.Context) (int, error) {
	var highest sql.NullInt64
	err := d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		ColumnExpr("MAX(CAST(SUBSTR(booking_id, 3) AS INTEGER))").
		Scan(ctx, &highest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if !highest.Valid {
		return 0, nil
	}
	return int(highest.Int64), nil
}

// FormatBookingID renders a sequence number as BK + 3-digit zero-padded
// integer; values past 999 simply widen.
func FormatBookingID(seq int) string {
	return fmt.Sprintf("BK%03d", seq)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// SQLite and Postgres phrase the constraint violation differently.
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
