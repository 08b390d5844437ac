package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

const collectionRegistrations = "registrations"

// RegistrationRepository implements ports.RegistrationRepository on MongoDB.
type RegistrationRepository struct {
	col *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{col: db.Collection(collectionRegistrations)}
}

type registrationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EventID       string             `bson:"event_id,omitempty"`
	SchoolID      string             `bson:"school_id,omitempty"`
	FullName      string             `bson:"full_name"`
	Email         string             `bson:"email"`
	Phone         string             `bson:"phone,omitempty"`
	Organization  string             `bson:"organization,omitempty"`
	Role          string             `bson:"role"`
	Interest      string             `bson:"interest"`
	Student1Name  string             `bson:"student1_name,omitempty"`
	Student1Email string             `bson:"student1_email,omitempty"`
	Student2Name  string             `bson:"student2_name,omitempty"`
	Student2Email string             `bson:"student2_email,omitempty"`
	Notes         string             `bson:"notes,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d *registrationDoc) toDomain() *domain.Registration {
	return &domain.Registration{
		ID:            d.ID.Hex(),
		EventID:       d.EventID,
		SchoolID:      d.SchoolID,
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		Organization:  d.Organization,
		Role:          d.Role,
		Interest:      d.Interest,
		Student1Name:  d.Student1Name,
		Student1Email: d.Student1Email,
		Student2Name:  d.Student2Name,
		Student2Email: d.Student2Email,
		Notes:         d.Notes,
		Status:        domain.RegistrationStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func registrationToDoc(r *domain.Registration) registrationDoc {
	return registrationDoc{
		EventID:       r.EventID,
		SchoolID:      r.SchoolID,
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Organization:  r.Organization,
		Role:          r.Role,
		Interest:      r.Interest,
		Student1Name:  r.Student1Name,
		Student1Email: r.Student1Email,
		Student2Name:  r.Student2Name,
		Student2Email: r.Student2Email,
		Notes:         r.Notes,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// Insert persists a new registration and returns it with the generated ID.
func (r *RegistrationRepository) Insert(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, registrationToDoc(reg))
	if err != nil {
		return nil, err
	}

	created := *reg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRegistrationNotFound
	}

	var doc registrationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// UpdateStatus sets the status field by ID. Status is the only field the
// core ever updates after creation.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRegistrationNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

// ListAll returns the full collection, newest first.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	return r.list(ctx, bson.M{})
}

// ListByEmail returns rows whose submitter email exactly equals email,
// newest first.
func (r *RegistrationRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Registration, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *RegistrationRepository) list(ctx context.Context, filter bson.M) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []*domain.Registration
	for cur.Next(ctx) {
		var doc registrationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		regs = append(regs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

// EnsureIndexes creates the indexes backing the scoped listing queries.
func (r *RegistrationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
