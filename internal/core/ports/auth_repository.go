package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// IdentityRepository is the identity-provider contract: credential lookups
// only. The provider exclusively owns identity records.
type IdentityRepository interface {
	// FindByEmail returns domain.ErrIdentityNotFound for an unknown email.
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

// AdminDirectory answers the first of the two role-determining lookups:
// membership of an email in the admin allow-list. Matching is by exact
// string; no case folding or whitespace normalization is applied.
type AdminDirectory interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// SchoolRepository answers the second role-determining lookup and serves
// school profile reads.
type SchoolRepository interface {
	// FindByEmail returns the school whose email exactly equals email, or
	// domain.ErrSchoolNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.School, error)
	FindByID(ctx context.Context, id string) (*domain.School, error)
}
