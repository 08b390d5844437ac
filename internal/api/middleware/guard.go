package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/api/metrics"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// Redirect targets for guard decisions. The routing layer consuming this API
// treats 303 responses as navigation.
const (
	loginPath = "/login"
	homePath  = "/"
)

// Guard enforces a route's declared role requirement against the session
// state hydrated by the Session middleware.
//
// Authenticated-but-wrong-role redirects to the public home page, not back
// through login: retrying credentials that can never satisfy the requirement
// would loop. Only a caller with no identity at all is sent to login.
func Guard(req domain.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			decision := domain.EvaluateGuard(StateFromContext(c), session.HasSchool(), req)
			metrics.GuardDecisionsTotal.WithLabelValues(string(req), string(decision)).Inc()

			switch decision {
			case domain.DecisionAllow:
				return next(c)
			case domain.DecisionSuspend:
				// Rehydration could not complete; tell the caller to retry
				// rather than misroute a possibly-authenticated session.
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session state unavailable, retry")
			case domain.DecisionRedirectLogin:
				return c.Redirect(http.StatusSeeOther, loginPath)
			default: // domain.DecisionRedirectHome
				return c.Redirect(http.StatusSeeOther, homePath)
			}
		}
	}
}
