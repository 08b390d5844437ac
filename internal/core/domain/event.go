package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a tournament edition. At most one event is expected to carry the
// active flag at a time; nothing enforces that exclusivity at write time, so
// the registration path attaches whichever active event is returned first.
type Event struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Title             string    `json:"title" bson:"title"`
	Description       string    `json:"description,omitempty" bson:"description,omitempty"`
	EventDate         time.Time `json:"event_date" bson:"event_date"`
	Venue             string    `json:"venue" bson:"venue"`
	RegistrationStart time.Time `json:"registration_start,omitempty" bson:"registration_start,omitempty"`
	RegistrationEnd   time.Time `json:"registration_end,omitempty" bson:"registration_end,omitempty"`
	ImageURL          string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	VideoURL          string    `json:"video_url,omitempty" bson:"video_url,omitempty"`
	IsActive          bool      `json:"is_active" bson:"is_active"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}
