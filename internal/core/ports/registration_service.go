package ports

import (
	"context"
	"time"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// SubmitRegistrationInput carries a public tournament registration form.
type SubmitRegistrationInput struct {
	FullName      string
	Email         string
	Phone         string
	Organization  string
	Role          string
	Student1Name  string
	Student1Email string
	Student2Name  string
	Student2Email string
	Notes         string
}

// SubmitContactInput carries a public contact-form submission. It is stored
// as a registration with no event or school reference.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// TransitionInput identifies a status transition requested by an admin.
type TransitionInput struct {
	RegistrationID string
	NextStatus     string
	// ActorEmail is the admin session email, recorded in the audit trail.
	ActorEmail string
}

// RegistrationWithEvent pairs a registration with its resolved event join
// for the school dashboard. Event fields stay empty when event_id is null
// or no longer resolves.
type RegistrationWithEvent struct {
	Registration *domain.Registration
	EventTitle   string
	EventDate    time.Time
}

// RegistrationList is an authoritative collection snapshot with recomputed
// per-status totals. Transition returns one taken after the write completed.
type RegistrationList struct {
	Items []*domain.Registration
	Stats domain.RegistrationStats
}

// RegistrationService governs the registration lifecycle.
type RegistrationService interface {
	// Submit creates a pending registration attached to the currently
	// active event when one exists (event reference is nullable).
	Submit(ctx context.Context, input SubmitRegistrationInput) (*domain.Registration, error)

	// SubmitContact creates a pending registration with null event and
	// school references from a contact-form submission.
	SubmitContact(ctx context.Context, input SubmitContactInput) (*domain.Registration, error)

	// Transition applies an admin status change. Transitioning to the
	// current status is a successful no-op. The returned list is re-read
	// from the collaborator after the write, never patched locally.
	Transition(ctx context.Context, input TransitionInput) (*RegistrationList, error)

	// ListForSchool returns only rows whose submitter email exactly equals
	// the session email, regardless of what the repository returned.
	ListForSchool(ctx context.Context, sessionEmail string) ([]RegistrationWithEvent, error)

	// ListAll returns the unfiltered collection with status totals.
	ListAll(ctx context.Context) (*RegistrationList, error)
}
