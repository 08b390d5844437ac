package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/igiehon-foundation/tournament-portal/internal/api/metrics"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// WinnerHandler serves the public winners gallery and admin creation.
type WinnerHandler struct {
	service ports.WinnerService
}

func NewWinnerHandler(service ports.WinnerService) *WinnerHandler {
	return &WinnerHandler{service: service}
}

type createWinnerRequest struct {
	EventID      string `json:"event_id"      validate:"required"`
	SchoolID     string `json:"school_id"     validate:"required"`
	Position     int    `json:"position"      validate:"required,gt=0"`
	StudentNames string `json:"student_names" validate:"required"`
	VideoURL     string `json:"video_url"     validate:"omitempty,url"`
	ImageURL     string `json:"image_url"     validate:"omitempty,url"`
}

type winnerResponse struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	SchoolID     string     `json:"school_id"`
	Position     int        `json:"position"`
	StudentNames string     `json:"student_names"`
	VideoURL     string     `json:"video_url,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	EventTitle   string     `json:"event_title,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	SchoolName   string     `json:"school_name,omitempty"`
}

type winnerListResponse struct {
	Items []winnerResponse `json:"items"`
}

// List handles GET /v1/winners — the public gallery with event/school joins.
//
// @Summary      List winners
// @Tags         winners
// @Produce      json
// @Success      200  {object}  winnerListResponse
// @Router       /v1/winners [get]
func (h *WinnerHandler) List(c echo.Context) error {
	details, err := h.service.ListWinners(c.Request().Context())
	if err != nil {
		return err
	}

	resp := winnerListResponse{Items: make([]winnerResponse, 0, len(details))}
	for _, d := range details {
		row := winnerResponse{
			ID:           d.ID,
			EventID:      d.EventID,
			SchoolID:     d.SchoolID,
			Position:     d.Position,
			StudentNames: d.StudentNames,
			VideoURL:     d.VideoURL,
			ImageURL:     d.ImageURL,
			CreatedAt:    d.CreatedAt,
			EventTitle:   d.EventTitle,
			SchoolName:   d.SchoolName,
		}
		if !d.EventDate.IsZero() {
			date := d.EventDate
			row.EventDate = &date
		}
		resp.Items = append(resp.Items, row)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/admin/winners.
//
// @Summary      Record a winner
// @Tags         winners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWinnerRequest  true  "Winner details"
// @Success      201   {object}  winnerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/winners [post]
func (h *WinnerHandler) Create(c echo.Context) error {
	var req createWinnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.CreateWinner(c.Request().Context(), ports.CreateWinnerInput{
		EventID:      req.EventID,
		SchoolID:     req.SchoolID,
		Position:     req.Position,
		StudentNames: req.StudentNames,
		VideoURL:     req.VideoURL,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.WinnersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, winnerResponse{
		ID:           created.ID,
		EventID:      created.EventID,
		SchoolID:     created.SchoolID,
		Position:     created.Position,
		StudentNames: created.StudentNames,
		VideoURL:     created.VideoURL,
		ImageURL:     created.ImageURL,
		CreatedAt:    created.CreatedAt,
	})
}
