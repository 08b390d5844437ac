package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/api/metrics"
	"github.com/igiehon-foundation/tournament-portal/internal/api/middleware"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// RegistrationHandler handles public form submissions and the two
// role-scoped dashboard views.
type RegistrationHandler struct {
	service ports.RegistrationService
}

func NewRegistrationHandler(service ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Submit handles POST /v1/registrations — the public tournament form.
//
// @Summary      Submit a tournament registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        body  body      submitRegistrationRequest  true  "Registration details"
// @Success      201   {object}  registrationResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/registrations [post]
func (h *RegistrationHandler) Submit(c echo.Context) error {
	var req submitRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitRegistrationInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Organization:  req.Organization,
		Role:          req.Role,
		Student1Name:  req.Student1Name,
		Student1Email: req.Student1Email,
		Student2Name:  req.Student2Name,
		Student2Email: req.Student2Email,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsCreatedTotal.WithLabelValues(created.Interest).Inc()
	return c.JSON(http.StatusCreated, toRegistrationResponse(created))
}

// SubmitContact handles POST /v1/contact — the public contact form.
//
// @Summary      Submit a contact message
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        body  body      submitContactRequest  true  "Contact message"
// @Success      201   {object}  registrationResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *RegistrationHandler) SubmitContact(c echo.Context) error {
	var req submitContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.SubmitContact(c.Request().Context(), ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsCreatedTotal.WithLabelValues(created.Interest).Inc()
	return c.JSON(http.StatusCreated, toRegistrationResponse(created))
}

// ListForSchool handles GET /v1/school/registrations — rows owned by the
// signed-in school's email, with event joins.
//
// @Summary      List the caller's registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  schoolRegistrationListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/school/registrations [get]
func (h *RegistrationHandler) ListForSchool(c echo.Context) error {
	email, err := middleware.RequireSessionEmail(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListForSchool(c.Request().Context(), email)
	if err != nil {
		return err
	}

	resp := schoolRegistrationListResponse{Items: make([]schoolRegistrationResponse, 0, len(items))}
	for _, item := range items {
		row := schoolRegistrationResponse{
			registrationResponse: toRegistrationResponse(item.Registration),
			EventTitle:           item.EventTitle,
		}
		if !item.EventDate.IsZero() {
			date := item.EventDate
			row.EventDate = &date
		}
		resp.Items = append(resp.Items, row)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListAll handles GET /v1/admin/registrations — the unfiltered collection
// with per-status totals.
//
// @Summary      List all registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  registrationListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/registrations [get]
func (h *RegistrationHandler) ListAll(c echo.Context) error {
	list, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(list))
}

// Transition handles PATCH /v1/admin/registrations/:id/status. The response
// carries the collection as re-read after the write, so the dashboard counts
// always reflect the applied transition.
//
// @Summary      Change a registration's status
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Registration ID"
// @Param        body  body      transitionRequest  true  "Target status"
// @Success      200   {object}  registrationListResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/registrations/{id}/status [patch]
func (h *RegistrationHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor := ""
	if session := middleware.SessionFromContext(c); session != nil {
		actor = session.Email
	}

	list, err := h.service.Transition(c.Request().Context(), ports.TransitionInput{
		RegistrationID: c.Param("id"),
		NextStatus:     req.Status,
		ActorEmail:     actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(list))
}

func toRegistrationResponse(r *domain.Registration) registrationResponse {
	return registrationResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		SchoolID:      r.SchoolID,
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Organization:  r.Organization,
		Role:          r.Role,
		Interest:      r.Interest,
		Student1Name:  r.Student1Name,
		Student1Email: r.Student1Email,
		Student2Name:  r.Student2Name,
		Student2Email: r.Student2Email,
		Notes:         r.Notes,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func toListResponse(list *ports.RegistrationList) registrationListResponse {
	resp := registrationListResponse{
		Items: make([]registrationResponse, 0, len(list.Items)),
		Stats: registrationStatsResponse{
			Total:    list.Stats.Total,
			Pending:  list.Stats.Pending,
			Approved: list.Stats.Approved,
			Rejected: list.Stats.Rejected,
		},
	}
	for _, r := range list.Items {
		resp.Items = append(resp.Items, toRegistrationResponse(r))
	}
	return resp
}
