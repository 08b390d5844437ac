package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// EventService serves the public events listing.
type EventService interface {
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	// ActiveEvent returns nil, nil when no event is flagged active.
	ActiveEvent(ctx context.Context) (*domain.Event, error)
}
