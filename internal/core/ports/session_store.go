package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// SessionStore caches resolved sessions keyed by credential token ID. A
// cache miss is not an error condition for the gateway: it triggers role
// re-resolution against the data collaborator.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	// Find returns domain.ErrSessionNotFound on a miss.
	Find(ctx context.Context, tokenID string) (*domain.Session, error)
	Delete(ctx context.Context, tokenID string) error
}
