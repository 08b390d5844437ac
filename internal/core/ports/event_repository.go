package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// EventRepository defines persistence operations for tournament events.
type EventRepository interface {
	// FindActive returns the first event flagged active, or
	// domain.ErrEventNotFound when none is. Active-flag exclusivity is a
	// data-entry invariant, not enforced here.
	FindActive(ctx context.Context) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	// ListAll returns events ordered by event_date descending.
	ListAll(ctx context.Context) ([]*domain.Event, error)
}
