package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// WinnerService serves the public winners gallery and admin creation.
type WinnerService struct {
	repo    ports.WinnerRepository
	events  ports.EventRepository
	schools ports.SchoolRepository
	logger  zerolog.Logger
}

func NewWinnerService(
	repo ports.WinnerRepository,
	events ports.EventRepository,
	schools ports.SchoolRepository,
	logger zerolog.Logger,
) *WinnerService {
	return &WinnerService{repo: repo, events: events, schools: schools, logger: logger}
}

// ListWinners resolves the event and school joins per winner. A dangling
// reference leaves the join fields empty; it never fails the read.
func (s *WinnerService) ListWinners(ctx context.Context) ([]domain.WinnerDetail, error) {
	winners, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list winners: %w", err)
	}

	details := make([]domain.WinnerDetail, 0, len(winners))
	for _, w := range winners {
		detail := domain.WinnerDetail{Winner: *w}
		if event, evErr := s.events.FindByID(ctx, w.EventID); evErr == nil {
			detail.EventTitle = event.Title
			detail.EventDate = event.EventDate
		}
		if school, scErr := s.schools.FindByID(ctx, w.SchoolID); scErr == nil {
			detail.SchoolName = school.Name
		}
		details = append(details, detail)
	}
	return details, nil
}

// CreateWinner records a placing. Admin scoping is enforced by the route
// guard in front of the handler, not re-checked here.
func (s *WinnerService) CreateWinner(ctx context.Context, input ports.CreateWinnerInput) (*domain.Winner, error) {
	winner := &domain.Winner{
		EventID:      input.EventID,
		SchoolID:     input.SchoolID,
		Position:     input.Position,
		StudentNames: input.StudentNames,
		VideoURL:     input.VideoURL,
		ImageURL:     input.ImageURL,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, winner)
	if err != nil {
		s.logger.Error().Err(err).Str("event_id", input.EventID).Msg("failed to create winner")
		return nil, fmt.Errorf("create winner: %w", err)
	}

	s.logger.Info().Str("id", created.ID).Int("position", created.Position).Msg("winner recorded")
	return created, nil
}
