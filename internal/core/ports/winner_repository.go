package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// WinnerRepository defines persistence operations for winner records.
type WinnerRepository interface {
	Insert(ctx context.Context, w *domain.Winner) (*domain.Winner, error)
	// ListAll returns winners ordered by created_at descending.
	ListAll(ctx context.Context) ([]*domain.Winner, error)
}

// CreateWinnerInput carries an admin-created winner record.
type CreateWinnerInput struct {
	EventID      string
	SchoolID     string
	Position     int
	StudentNames string
	VideoURL     string
	ImageURL     string
}

// WinnerService serves the public winners gallery and admin creation.
type WinnerService interface {
	// ListWinners resolves event/school joins per row and tolerates
	// dangling references without failing the read.
	ListWinners(ctx context.Context) ([]domain.WinnerDetail, error)
	CreateWinner(ctx context.Context, input CreateWinnerInput) (*domain.Winner, error)
}
