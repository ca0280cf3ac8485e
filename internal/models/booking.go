package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// BookingTransitions lists the allowed status moves. Cancelled and
// completed are terminal; backward moves are rejected.
var BookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	BookingID string    `bun:"booking_id,pk" json:"bookingId"`
	Name      string    `bun:"name,notnull" json:"name"`
	Phone     string    `bun:"phone,notnull" json:"phone"`
	Email     string    `bun:"email,notnull" json:"email"`
	Date      string    `bun:"date,notnull" json:"date"`
	Time      string    `bun:"time,notnull" json:"time"`
	Players   int       `bun:"players,notnull" json:"players"`
	Notes     string    `bun:"notes" json:"notes"`
	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

// BookingInput is the public table booking request shape.
type BookingInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Players int    `json:"players"`
	Notes   string `json:"notes"`
}
