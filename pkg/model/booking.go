package model

import (
	"time"
)

// Booking weakly references an Event by id; it does not own it. Email is
// stored trimmed and lowercased. There are no update or delete semantics for
// bookings.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	EventID   string    `json:"event_id" bson:"event_id" validate:"required,mongodb"`
	Email     string    `json:"email" bson:"email" validate:"required"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at" validate:"omitempty"`
}
