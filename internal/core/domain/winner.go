package domain

import "time"

// Winner records a placing at a tournament edition. Created only by an
// administrator once the backing registration has been approved; that
// precondition is informal and not enforced by the schema.
type Winner struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	EventID      string    `json:"event_id" bson:"event_id"`
	SchoolID     string    `json:"school_id" bson:"school_id"`
	Position     int       `json:"position" bson:"position"`
	StudentNames string    `json:"student_names" bson:"student_names"`
	VideoURL     string    `json:"video_url,omitempty" bson:"video_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// WinnerDetail is the read model for public winner listings, with the event
// and school joins resolved. A winner whose references no longer resolve
// keeps empty join fields; the read never fails on a dangling reference.
type WinnerDetail struct {
	Winner
	EventTitle string    `json:"event_title,omitempty"`
	EventDate  time.Time `json:"event_date,omitempty"`
	SchoolName string    `json:"school_name,omitempty"`
}
