package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// RegistrationService governs the registration lifecycle: public creation,
// admin triage transitions, and role-scoped listings.
type RegistrationService struct {
	repo    ports.RegistrationRepository
	events  ports.EventRepository
	schools ports.SchoolRepository
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewRegistrationService(
	repo ports.RegistrationRepository,
	events ports.EventRepository,
	schools ports.SchoolRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:    repo,
		events:  events,
		schools: schools,
		audit:   audit,
		logger:  logger,
	}
}

// Submit creates a pending registration from the public tournament form.
// The currently active event is attached when one exists; with no active
// event the event reference stays null. A school reference is attached when
// the submitter email matches a school profile.
func (s *RegistrationService) Submit(ctx context.Context, input ports.SubmitRegistrationInput) (*domain.Registration, error) {
	eventID := ""
	event, err := s.events.FindActive(ctx)
	switch {
	case err == nil:
		eventID = event.ID
	case errors.Is(err, domain.ErrEventNotFound):
		// no active event; registration proceeds unattached
	default:
		return nil, fmt.Errorf("submit registration: active event lookup: %w", err)
	}

	schoolID := ""
	school, err := s.schools.FindByEmail(ctx, input.Email)
	if err == nil {
		schoolID = school.ID
	} else if !errors.Is(err, domain.ErrSchoolNotFound) {
		return nil, fmt.Errorf("submit registration: school lookup: %w", err)
	}

	reg := &domain.Registration{
		EventID:       eventID,
		SchoolID:      schoolID,
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		Organization:  input.Organization,
		Role:          input.Role,
		Interest:      "event",
		Student1Name:  input.Student1Name,
		Student1Email: input.Student1Email,
		Student2Name:  input.Student2Name,
		Student2Email: input.Student2Email,
		Notes:         input.Notes,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, reg)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create registration")
		return nil, fmt.Errorf("submit registration: %w", err)
	}

	s.logger.Info().Str("id", created.ID).Str("email", created.Email).Str("event_id", created.EventID).Msg("registration created")
	return created, nil
}

// SubmitContact stores a contact-form submission as a registration with null
// event and school references.
func (s *RegistrationService) SubmitContact(ctx context.Context, input ports.SubmitContactInput) (*domain.Registration, error) {
	reg := &domain.Registration{
		FullName:  input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      "other",
		Interest:  "partner",
		Notes:     fmt.Sprintf("Subject: %s\n\nMessage: %s", input.Subject, input.Message),
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, reg)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create contact registration")
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	s.logger.Info().Str("id", created.ID).Str("email", created.Email).Msg("contact registration created")
	return created, nil
}

// Transition applies an admin status change and returns the collection as
// re-read after the write. A same-status transition succeeds without
// touching the row. On write failure nothing is returned, so the caller's
// displayed state stays as it was.
func (s *RegistrationService) Transition(ctx context.Context, input ports.TransitionInput) (*ports.RegistrationList, error) {
	next := domain.RegistrationStatus(input.NextStatus)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, input.NextStatus)
	}

	current, err := s.repo.FindByID(ctx, input.RegistrationID)
	if err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}

	if current.Status != next {
		if !current.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, current.Status)
		}
		if err := s.repo.UpdateStatus(ctx, input.RegistrationID, next); err != nil {
			s.logger.Error().Err(err).Str("id", input.RegistrationID).Str("to", string(next)).Msg("status write rejected")
			return nil, fmt.Errorf("transition: %w", err)
		}
		s.audit.Record(domain.StatusChange{
			RegistrationID: input.RegistrationID,
			From:           current.Status,
			To:             next,
			Actor:          input.ActorEmail,
			At:             time.Now().UTC(),
		})
		s.logger.Info().
			Str("id", input.RegistrationID).
			Str("from", string(current.Status)).
			Str("to", string(next)).
			Str("actor", input.ActorEmail).
			Msg("registration status changed")
	}

	// Authoritative re-read: dependent counts must reflect the write, so no
	// optimistic local patching.
	return s.ListAll(ctx)
}

// ListForSchool returns rows whose submitter email exactly equals the
// session email. The equality filter is enforced here again on top of the
// repository query; a row with a different email is never exposed to the
// school-scoped view.
func (s *RegistrationService) ListForSchool(ctx context.Context, sessionEmail string) ([]ports.RegistrationWithEvent, error) {
	rows, err := s.repo.ListByEmail(ctx, sessionEmail)
	if err != nil {
		return nil, fmt.Errorf("list for school: %w", err)
	}

	items := make([]ports.RegistrationWithEvent, 0, len(rows))
	for _, r := range rows {
		if r.Email != sessionEmail {
			continue
		}
		item := ports.RegistrationWithEvent{Registration: r}
		if r.EventID != "" {
			if event, evErr := s.events.FindByID(ctx, r.EventID); evErr == nil {
				item.EventTitle = event.Title
				item.EventDate = event.EventDate
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// ListAll returns the unfiltered collection with recomputed status totals.
func (s *RegistrationService) ListAll(ctx context.Context) (*ports.RegistrationList, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return &ports.RegistrationList{
		Items: rows,
		Stats: domain.CountByStatus(rows),
	}, nil
}
