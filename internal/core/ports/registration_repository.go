package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// RegistrationRepository defines persistence operations for registrations.
// Rows are never deleted through the core; status is the only update.
type RegistrationRepository interface {
	Insert(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	FindByID(ctx context.Context, id string) (*domain.Registration, error)
	// UpdateStatus sets the row's status by ID. Returns
	// domain.ErrRegistrationNotFound when no row matches.
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error
	// ListAll returns the full collection ordered by created_at descending.
	ListAll(ctx context.Context) ([]*domain.Registration, error)
	// ListByEmail returns rows whose submitter email exactly equals email,
	// ordered by created_at descending.
	ListByEmail(ctx context.Context, email string) ([]*domain.Registration, error)
}

// AuditRecorder appends applied status transitions to the audit trail.
// Recording sits outside the synchronous transition path; failures are
// logged, never surfaced to the caller.
type AuditRecorder interface {
	Record(change domain.StatusChange)
}
