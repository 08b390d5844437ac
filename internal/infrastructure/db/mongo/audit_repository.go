package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

const collectionAudit = "registration_audit"

// AuditRepository appends status-change records to the registration_audit
// collection. Writes happen off the request path via the audit dispatcher.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

func (r *AuditRepository) Append(ctx context.Context, change domain.StatusChange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"registration_id": change.RegistrationID,
		"from":            string(change.From),
		"to":              string(change.To),
		"actor":           change.Actor,
		"at":              change.At.UTC(),
		"recorded_at":     time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
