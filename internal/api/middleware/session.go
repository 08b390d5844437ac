package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// Context keys set by the Session middleware and read by Guard and handlers.
const (
	CtxSession = "session"       // *domain.Session, nil when anonymous
	CtxState   = "session_state" // domain.SessionState
)

// Session rehydrates the caller's session from the bearer credential and
// injects it into the request context. It never rejects a request itself;
// access decisions belong to the Guard middleware.
//
// An absent credential yields Anonymous with no collaborator call. An
// invalid or expired credential also yields Anonymous. A transient failure
// while re-resolving the role leaves the state Unknown: the guard then
// suspends instead of bouncing a possibly-authenticated caller to login.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				c.Set(CtxState, domain.StateAnonymous)
				return next(c)
			}

			session, err := auth.CurrentSession(c.Request().Context(), token)
			switch {
			case err == nil:
				c.Set(CtxSession, session)
				c.Set(CtxState, session.State())
			case errors.Is(err, domain.ErrInvalidCredentials):
				c.Set(CtxState, domain.StateAnonymous)
			default:
				c.Set(CtxState, domain.StateUnknown)
			}

			return next(c)
		}
	}
}

// SessionFromContext returns the hydrated session, or nil for anonymous
// callers.
func SessionFromContext(c echo.Context) *domain.Session {
	s, _ := c.Get(CtxSession).(*domain.Session)
	return s
}

// StateFromContext returns the guard state. A request that bypassed the
// Session middleware reads as Unknown, which the guard refuses to act on.
func StateFromContext(c echo.Context) domain.SessionState {
	if s, ok := c.Get(CtxState).(domain.SessionState); ok {
		return s
	}
	return domain.StateUnknown
}

// RequireSessionEmail returns the session email or fails with 401. Used by
// role-scoped handlers after the guard has allowed the request.
func RequireSessionEmail(c echo.Context) (string, error) {
	session := SessionFromContext(c)
	if session == nil || session.Email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session.Email, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
