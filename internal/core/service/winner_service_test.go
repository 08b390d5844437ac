package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

type stubWinnerRepo struct {
	rows      []*domain.Winner
	nextID    int
	insertErr error
	listErr   error
}

func (r *stubWinnerRepo) Insert(_ context.Context, w *domain.Winner) (*domain.Winner, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	clone := *w
	clone.ID = fmt.Sprintf("win-%d", r.nextID)
	r.rows = append(r.rows, &clone)
	out := clone
	return &out, nil
}

func (r *stubWinnerRepo) ListAll(_ context.Context) ([]*domain.Winner, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Winner, 0, len(r.rows))
	for _, w := range r.rows {
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func TestWinnerService_ListWinners_ResolvesJoins(t *testing.T) {
	repo := &stubWinnerRepo{rows: []*domain.Winner{
		{ID: "w1", EventID: "ev1", SchoolID: "s1", Position: 1, StudentNames: "A. Ada, B. Boole"},
	}}
	events := newStubEventRepo(&domain.Event{ID: "ev1", Title: "Tournament 2026"})
	schools := newStubSchoolRepo(&domain.School{ID: "s1", Name: "Central High", Email: "school@example.org"})
	svc := NewWinnerService(repo, events, schools, zerolog.Nop())

	details, err := svc.ListWinners(context.Background())
	if err != nil {
		t.Fatalf("ListWinners returned error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 winner, got %d", len(details))
	}
	if details[0].EventTitle != "Tournament 2026" {
		t.Fatalf("expected resolved event title, got %q", details[0].EventTitle)
	}
	if details[0].SchoolName != "Central High" {
		t.Fatalf("expected resolved school name, got %q", details[0].SchoolName)
	}
}

func TestWinnerService_ListWinners_ToleratesDanglingReferences(t *testing.T) {
	repo := &stubWinnerRepo{rows: []*domain.Winner{
		{ID: "w1", EventID: "gone", SchoolID: "also-gone", Position: 2, StudentNames: "C. Cantor"},
	}}
	svc := NewWinnerService(repo, newStubEventRepo(), newStubSchoolRepo(), zerolog.Nop())

	details, err := svc.ListWinners(context.Background())
	if err != nil {
		t.Fatalf("dangling references must not fail the read: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected the row to survive, got %d rows", len(details))
	}
	if details[0].EventTitle != "" || details[0].SchoolName != "" {
		t.Fatalf("expected empty join fields, got %+v", details[0])
	}
	if details[0].StudentNames != "C. Cantor" {
		t.Fatalf("winner payload must be intact, got %q", details[0].StudentNames)
	}
}

func TestWinnerService_CreateWinner(t *testing.T) {
	repo := &stubWinnerRepo{}
	svc := NewWinnerService(repo, newStubEventRepo(), newStubSchoolRepo(), zerolog.Nop())

	created, err := svc.CreateWinner(context.Background(), ports.CreateWinnerInput{
		EventID:      "ev1",
		SchoolID:     "s1",
		Position:     1,
		StudentNames: "A. Ada",
	})
	if err != nil {
		t.Fatalf("CreateWinner returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.Position != 1 || created.EventID != "ev1" {
		t.Fatalf("unexpected winner: %+v", created)
	}
}

func TestWinnerService_CreateWinner_InsertError(t *testing.T) {
	repo := &stubWinnerRepo{insertErr: errors.New("write rejected")}
	svc := NewWinnerService(repo, newStubEventRepo(), newStubSchoolRepo(), zerolog.Nop())

	if _, err := svc.CreateWinner(context.Background(), ports.CreateWinnerInput{EventID: "ev1"}); err == nil {
		t.Fatal("expected insert error to propagate")
	}
}
