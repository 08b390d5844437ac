package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// EventHandler serves the public events listing.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type eventResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	EventDate         time.Time  `json:"event_date"`
	Venue             string     `json:"venue"`
	RegistrationStart *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd   *time.Time `json:"registration_end,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
	VideoURL          string     `json:"video_url,omitempty"`
	IsActive          bool       `json:"is_active"`
}

type eventListResponse struct {
	Items []eventResponse `json:"items"`
}

// List handles GET /v1/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventListResponse
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}

	resp := eventListResponse{Items: make([]eventResponse, 0, len(events))}
	for _, e := range events {
		resp.Items = append(resp.Items, toEventResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

// Active handles GET /v1/events/active — the event the registration form
// attaches to, or 204 when none is flagged.
//
// @Summary      Current active event
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventResponse
// @Success      204  "no active event"
// @Router       /v1/events/active [get]
func (h *EventHandler) Active(c echo.Context) error {
	event, err := h.service.ActiveEvent(c.Request().Context())
	if err != nil {
		return err
	}
	if event == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}

func toEventResponse(e *domain.Event) eventResponse {
	resp := eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		Venue:       e.Venue,
		ImageURL:    e.ImageURL,
		VideoURL:    e.VideoURL,
		IsActive:    e.IsActive,
	}
	if !e.RegistrationStart.IsZero() {
		start := e.RegistrationStart
		resp.RegistrationStart = &start
	}
	if !e.RegistrationEnd.IsZero() {
		end := e.RegistrationEnd
		resp.RegistrationEnd = &end
	}
	return resp
}
