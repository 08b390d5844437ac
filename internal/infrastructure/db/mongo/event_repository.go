package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

const collectionEvents = "events"

// EventRepository implements ports.EventRepository on MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

type eventDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Title             string             `bson:"title"`
	Description       string             `bson:"description,omitempty"`
	EventDate         time.Time          `bson:"event_date"`
	Venue             string             `bson:"venue"`
	RegistrationStart time.Time          `bson:"registration_start,omitempty"`
	RegistrationEnd   time.Time          `bson:"registration_end,omitempty"`
	ImageURL          string             `bson:"image_url,omitempty"`
	VideoURL          string             `bson:"video_url,omitempty"`
	IsActive          bool               `bson:"is_active"`
	CreatedAt         time.Time          `bson:"created_at"`
}

func (d *eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:                d.ID.Hex(),
		Title:             d.Title,
		Description:       d.Description,
		EventDate:         d.EventDate,
		Venue:             d.Venue,
		RegistrationStart: d.RegistrationStart,
		RegistrationEnd:   d.RegistrationEnd,
		ImageURL:          d.ImageURL,
		VideoURL:          d.VideoURL,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
	}
}

// FindActive returns the first event flagged active. When several are
// (nothing prevents it), whichever sorts newest by event_date wins.
func (r *EventRepository) FindActive(ctx context.Context) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "event_date", Value: -1}})
	var doc eventDoc
	if err := r.col.FindOne(ctx, bson.M{"is_active": true}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find active event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var doc eventDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

// ListAll returns events ordered by event_date descending.
func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "event_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.Event
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
