package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/api/metrics"
	"github.com/igiehon-foundation/tournament-portal/internal/api/middleware"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	State     string `json:"state"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	SchoolID  string `json:"school_id,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// Login authenticates a school or admin identity and returns the credential
// token with the derived session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, token, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.SignInsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Session: toSessionResponse(session),
	})
}

// Logout discards the caller's cached session. Always returns 204: local
// sign-out must not be blocked by a collaborator failure.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "signed out"
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := middleware.SessionFromContext(c); session != nil {
		h.authService.SignOut(c.Request().Context(), session.TokenID)
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current guard state, so the routing layer can decide
// navigation without a protected call.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	state := middleware.StateFromContext(c)
	resp := sessionResponse{State: string(state)}
	if session := middleware.SessionFromContext(c); session != nil {
		resp = toSessionResponse(session)
	}
	return c.JSON(http.StatusOK, resp)
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		State:     string(s.State()),
		Email:     s.Email,
		Role:      string(s.Role),
		SchoolID:  s.SchoolID,
		ExpiresAt: s.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
