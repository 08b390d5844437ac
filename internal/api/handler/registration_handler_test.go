package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/api/middleware"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

type stubRegistrationService struct {
	submitFn        func(ctx context.Context, input ports.SubmitRegistrationInput) (*domain.Registration, error)
	submitContactFn func(ctx context.Context, input ports.SubmitContactInput) (*domain.Registration, error)
	transitionFn    func(ctx context.Context, input ports.TransitionInput) (*ports.RegistrationList, error)
	listForSchoolFn func(ctx context.Context, sessionEmail string) ([]ports.RegistrationWithEvent, error)
	listAllFn       func(ctx context.Context) (*ports.RegistrationList, error)
}

func (s *stubRegistrationService) Submit(ctx context.Context, input ports.SubmitRegistrationInput) (*domain.Registration, error) {
	return s.submitFn(ctx, input)
}

func (s *stubRegistrationService) SubmitContact(ctx context.Context, input ports.SubmitContactInput) (*domain.Registration, error) {
	return s.submitContactFn(ctx, input)
}

func (s *stubRegistrationService) Transition(ctx context.Context, input ports.TransitionInput) (*ports.RegistrationList, error) {
	return s.transitionFn(ctx, input)
}

func (s *stubRegistrationService) ListForSchool(ctx context.Context, sessionEmail string) ([]ports.RegistrationWithEvent, error) {
	return s.listForSchoolFn(ctx, sessionEmail)
}

func (s *stubRegistrationService) ListAll(ctx context.Context) (*ports.RegistrationList, error) {
	return s.listAllFn(ctx)
}

func TestRegistrationHandler_Submit_Success(t *testing.T) {
	stub := &stubRegistrationService{
		submitFn: func(_ context.Context, input ports.SubmitRegistrationInput) (*domain.Registration, error) {
			if input.Email != "jane@example.org" || input.Role != "teacher" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Registration{
				ID:       "reg-1",
				EventID:  "ev1",
				FullName: input.FullName,
				Email:    input.Email,
				Role:     input.Role,
				Interest: "event",
				Status:   domain.StatusPending,
			}, nil
		},
	}
	h := NewRegistrationHandler(stub)

	body := `{"full_name":"Jane Doe","email":"jane@example.org","organization":"Central High","role":"teacher","student1_name":"A. Ada"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/registrations", body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "pending" || resp["event_id"] != "ev1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRegistrationHandler_Submit_RejectsUnknownRole(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{})

	body := `{"full_name":"Jane Doe","email":"jane@example.org","organization":"Central High","role":"janitor","student1_name":"A. Ada"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/registrations", body)
	err := h.Submit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestRegistrationHandler_SubmitContact_Success(t *testing.T) {
	stub := &stubRegistrationService{
		submitContactFn: func(_ context.Context, input ports.SubmitContactInput) (*domain.Registration, error) {
			if input.Subject != "Sponsorship" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Registration{ID: "reg-1", Email: input.Email, Interest: "partner", Status: domain.StatusPending}, nil
		},
	}
	h := NewRegistrationHandler(stub)

	body := `{"name":"Jane Doe","email":"jane@example.org","subject":"Sponsorship","message":"We would like to help."}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/contact", body)
	if err := h.SubmitContact(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRegistrationHandler_Transition_ReturnsReReadList(t *testing.T) {
	stub := &stubRegistrationService{
		transitionFn: func(_ context.Context, input ports.TransitionInput) (*ports.RegistrationList, error) {
			if input.RegistrationID != "reg-1" || input.NextStatus != "approved" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ActorEmail != "admin@example.org" {
				t.Fatalf("expected actor from session, got %q", input.ActorEmail)
			}
			return &ports.RegistrationList{
				Items: []*domain.Registration{{ID: "reg-1", Status: domain.StatusApproved}},
				Stats: domain.RegistrationStats{Total: 1, Approved: 1},
			}, nil
		},
	}
	h := NewRegistrationHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/admin/registrations/reg-1/status", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("reg-1")
	c.Set(middleware.CtxSession, &domain.Session{Email: "admin@example.org", Role: domain.RoleAdmin})

	if err := h.Transition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatal("expected stats in response")
	}
	if stats["approved"] != float64(1) || stats["total"] != float64(1) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRegistrationHandler_Transition_RejectsUnknownStatus(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{})

	c, _ := newTestContext(t, http.MethodPatch, "/v1/admin/registrations/reg-1/status", `{"status":"archived"}`)
	err := h.Transition(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 before any collaborator call, got %v", err)
	}
}

func TestRegistrationHandler_ListForSchool(t *testing.T) {
	eventDate := time.Date(2026, 11, 7, 9, 0, 0, 0, time.UTC)
	stub := &stubRegistrationService{
		listForSchoolFn: func(_ context.Context, sessionEmail string) ([]ports.RegistrationWithEvent, error) {
			if sessionEmail != "school@example.org" {
				t.Fatalf("unexpected session email %q", sessionEmail)
			}
			return []ports.RegistrationWithEvent{
				{
					Registration: &domain.Registration{ID: "reg-1", Email: sessionEmail, Status: domain.StatusApproved},
					EventTitle:   "Tournament 2026",
					EventDate:    eventDate,
				},
			}, nil
		},
	}
	h := NewRegistrationHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/school/registrations", "")
	c.Set(middleware.CtxSession, &domain.Session{Email: "school@example.org", Role: domain.RoleSchool, SchoolID: "s1"})

	if err := h.ListForSchool(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item, got %+v", resp)
	}
	row := items[0].(map[string]any)
	if row["event_title"] != "Tournament 2026" {
		t.Fatalf("expected event join in payload, got %+v", row)
	}
}

func TestRegistrationHandler_ListForSchool_NoSession(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/school/registrations", "")
	err := h.ListForSchool(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
