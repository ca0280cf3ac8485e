package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DefaultEventImage is used when an event is created without an image URL.
const DefaultEventImage = "https://images.unsplash.com/photo-1610890716271-e2fe9e9c0c6d?w=400&h=300&fit=crop"

const (
	EventTypeTournament = "tournament"
	EventTypeCasual     = "casual"
	EventTypeThemed     = "themed"
	EventTypeWorkshop   = "workshop"
)

const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

var EventTypes = []string{EventTypeTournament, EventTypeCasual, EventTypeThemed, EventTypeWorkshop}

var EventStatuses = []string{EventStatusActive, EventStatusCancelled, EventStatusCompleted}

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          string    `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Date        string    `bun:"date,notnull" json:"date"`
	Time        string    `bun:"time,notnull" json:"time"`
	Duration    int       `bun:"duration,notnull" json:"duration"`
	Description string    `bun:"description,notnull" json:"description"`
	Type        string    `bun:"type,notnull" json:"type"`
	Price       int       `bun:"price,notnull" json:"price"`
	Capacity    int       `bun:"capacity,notnull" json:"capacity"`
	Registered  int       `bun:"registered,notnull,default:0" json:"registered"`
	Image       string    `bun:"image" json:"image"`
	Status      string    `bun:"status,notnull" json:"status"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

// EventInput is the request shape for event create and update.
// Pointer fields distinguish "absent" from zero values on partial updates.
type EventInput struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Duration    *int    `json:"duration"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Price       *int    `json:"price"`
	Capacity    *int    `json:"capacity"`
	Image       *string `json:"image"`
	Status      *string `json:"status"`
}

// ValidEnum reports whether value is one of the allowed members.
func ValidEnum(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
