package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

const collectionWinners = "winners"

// WinnerRepository implements ports.WinnerRepository on MongoDB.
type WinnerRepository struct {
	col *mongo.Collection
}

func NewWinnerRepository(db *mongo.Database) *WinnerRepository {
	return &WinnerRepository{col: db.Collection(collectionWinners)}
}

type winnerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EventID      string             `bson:"event_id"`
	SchoolID     string             `bson:"school_id"`
	Position     int                `bson:"position"`
	StudentNames string             `bson:"student_names"`
	VideoURL     string             `bson:"video_url,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *winnerDoc) toDomain() *domain.Winner {
	return &domain.Winner{
		ID:           d.ID.Hex(),
		EventID:      d.EventID,
		SchoolID:     d.SchoolID,
		Position:     d.Position,
		StudentNames: d.StudentNames,
		VideoURL:     d.VideoURL,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *WinnerRepository) Insert(ctx context.Context, w *domain.Winner) (*domain.Winner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := winnerDoc{
		EventID:      w.EventID,
		SchoolID:     w.SchoolID,
		Position:     w.Position,
		StudentNames: w.StudentNames,
		VideoURL:     w.VideoURL,
		ImageURL:     w.ImageURL,
		CreatedAt:    w.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert winner: %w", err)
	}

	created := *w
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListAll returns winners ordered by created_at descending.
func (r *WinnerRepository) ListAll(ctx context.Context) ([]*domain.Winner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list winners: %w", err)
	}
	defer cur.Close(ctx)

	var winners []*domain.Winner
	for cur.Next(ctx) {
		var doc winnerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		winners = append(winners, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return winners, nil
}
