package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"gameopolis-api/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListEvents(ctx context.Context, status, eventType string) ([]models.Event, error) {
	events := make([]models.Event, 0)
	q := d.Bun.NewSelect().Model(&events)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if eventType != "" {
		q = q.Where("type = ?", eventType)
	}
	if err := q.Order("date ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) CreateEvent(ctx context.Context, event models.Event) error {
	_, err := d.Bun.NewInsert().Model(&event).Exec(ctx)
	return err
}

func (d *DB) UpdateEvent(ctx context.Context, event models.Event) error {
	res, err := d.Bun.NewUpdate().
		Model(&event).
		Column("name", "date", "time", "duration", "description", "type",
			"price", "capacity", "registered", "image", "status", "updated_at").
		Where("id = ?", event.ID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DB) DeleteEvent(ctx context.Context, id string) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// RegisterAttendee performs the capacity check and the increment in one
// conditional UPDATE so concurrent registrations cannot overbook. Zero
// rows affected means the event is missing or already full.
func (d *DB) RegisterAttendee(ctx context.Context, id string) (int64, error) {
	res, err := d.Bun.NewUpdate().
		Model((*models.Event)(nil)).
		Set("registered = registered + 1").
		Where("id = ?", id).
		Where("registered < capacity").
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
