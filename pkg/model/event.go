package model

import (
	"time"
)

// Event is a single listed event. Slug is derived from Title unless set
// explicitly and is unique across the collection. Date and Time are stored in
// their canonical string forms (YYYY-MM-DD and 24-hour HH:MM) for easy
// filtering and display.
type Event struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title       string    `json:"title" bson:"title" validate:"required"`
	Slug        string    `json:"slug,omitempty" bson:"slug" validate:"omitempty,nonblank"`
	Description string    `json:"description" bson:"description" validate:"required,nonblank"`
	Overview    string    `json:"overview" bson:"overview" validate:"required,nonblank"`
	Image       string    `json:"image" bson:"image" validate:"required,nonblank"`
	Venue       string    `json:"venue" bson:"venue" validate:"required,nonblank"`
	Location    string    `json:"location" bson:"location" validate:"required,nonblank"`
	Date        string    `json:"date" bson:"date" validate:"required,nonblank"`
	Time        string    `json:"time" bson:"time" validate:"required,nonblank"`
	Mode        string    `json:"mode" bson:"mode" validate:"required,nonblank"`
	Audience    string    `json:"audience" bson:"audience" validate:"required,nonblank"`
	Organizer   string    `json:"organizer" bson:"organizer" validate:"required,nonblank"`
	Agenda      []string  `json:"agenda" bson:"agenda" validate:"nonblank_items"`
	Tags        []string  `json:"tags" bson:"tags" validate:"nonblank_items"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at" validate:"omitempty"`
}

// EventUpdate carries a partial update. Nil / zero fields are left untouched;
// the merged record is re-validated and re-normalized in full before the
// write, and the slug is regenerated when Title changes.
type EventUpdate struct {
	Title       string    `json:"title,omitempty" validate:"omitempty,nonblank"`
	Description string    `json:"description,omitempty" validate:"omitempty,nonblank"`
	Overview    string    `json:"overview,omitempty" validate:"omitempty,nonblank"`
	Image       string    `json:"image,omitempty" validate:"omitempty,nonblank"`
	Venue       string    `json:"venue,omitempty" validate:"omitempty,nonblank"`
	Location    string    `json:"location,omitempty" validate:"omitempty,nonblank"`
	Date        string    `json:"date,omitempty" validate:"omitempty,nonblank"`
	Time        string    `json:"time,omitempty" validate:"omitempty,nonblank"`
	Mode        string    `json:"mode,omitempty" validate:"omitempty,nonblank"`
	Audience    string    `json:"audience,omitempty" validate:"omitempty,nonblank"`
	Organizer   string    `json:"organizer,omitempty" validate:"omitempty,nonblank"`
	Agenda      *[]string `json:"agenda,omitempty" validate:"omitempty"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty"`
}
