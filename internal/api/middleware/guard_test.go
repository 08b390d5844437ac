package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

func guardContext(t *testing.T, state domain.SessionState, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxState, state)
	if session != nil {
		c.Set(CtxSession, session)
	}
	return c, rec
}

func TestGuard_AdminAllowed(t *testing.T) {
	c, rec := guardContext(t, domain.StateAuthenticatedAdmin, &domain.Session{Role: domain.RoleAdmin})

	called := false
	handler := Guard(domain.RequireAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	c, rec := guardContext(t, domain.StateAnonymous, nil)

	handler := Guard(domain.RequireSchool)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_WrongRoleRedirectsHome(t *testing.T) {
	c, rec := guardContext(t, domain.StateAuthenticatedSchool, &domain.Session{Role: domain.RoleSchool, SchoolID: "s1"})

	handler := Guard(domain.RequireAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("wrong role must go home, not back through login; got %q", loc)
	}
}

func TestGuard_AdminWithSchoolAllowedOnSchoolRoute(t *testing.T) {
	c, rec := guardContext(t, domain.StateAuthenticatedAdmin, &domain.Session{Role: domain.RoleAdmin, SchoolID: "s1"})

	called := false
	handler := Guard(domain.RequireSchool)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("admin with a school association must pass, got %d", rec.Code)
	}
}

func TestGuard_AdminWithoutSchoolRedirectsHomeOnSchoolRoute(t *testing.T) {
	c, rec := guardContext(t, domain.StateAuthenticatedAdmin, &domain.Session{Role: domain.RoleAdmin})

	handler := Guard(domain.RequireSchool)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
}

func TestGuard_UnknownStateSuspends(t *testing.T) {
	c, _ := guardContext(t, domain.StateUnknown, nil)

	handler := Guard(domain.RequireSchool)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTP error, got %v", err)
	}
	if httpErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while session state is unresolved, got %d", httpErr.Code)
	}
}

func TestGuard_MissingStateReadsAsUnknown(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(domain.RequireAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("a request that bypassed session hydration must suspend, got %v", err)
	}
}
