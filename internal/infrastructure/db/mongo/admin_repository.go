package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionAdminUsers = "admin_users"

// AdminDirectory implements ports.AdminDirectory on the admin_users
// collection. Membership is decided by exact email string match; no
// normalization is applied.
type AdminDirectory struct {
	col *mongo.Collection
}

func NewAdminDirectory(db *mongo.Database) *AdminDirectory {
	return &AdminDirectory{col: db.Collection(collectionAdminUsers)}
}

func (r *AdminDirectory) IsAdmin(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("admin lookup: %w", err)
	}
	return n > 0, nil
}
