package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

type AttendeeController struct {
	Logger      *slog.Logger
	Service     domain.AttendeeService
	MaxPageSize int
}

// NewAttendeeController creates the controller. maxPageSize caps the limit
// query parameter; zero leaves it uncapped.
func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService, maxPageSize int) *AttendeeController {
	return &AttendeeController{
		Logger:      logger,
		Service:     svc,
		MaxPageSize: maxPageSize,
	}
}

// ListAttendees godoc
// @Summary Search and paginate the attendees of an event
// @Description Filters attendees whose name, email or document contains the search text, ignoring case and accents, sorts them by name and returns one page. total counts all matches.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param search query string false "Free text"
// @Param page query int false "Page number, from 1" default(1)
// @Param limit query int false "Page size, at least 1" default(20)
// @Success 200 {object} domain.AttendeePage
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendees [get]
func (c *AttendeeController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	q := domain.AttendeeQuery{
		Search:           r.URL.Query().Get("search"),
		PaginationParams: helpers.ParsePagination(r, c.MaxPageSize),
	}

	page, err := c.Service.SearchAttendees(r.Context(), eventID, q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if page.Data == nil {
		page.Data = []*domain.Attendee{}
	}
	helpers.WriteJSON(w, http.StatusOK, page)
}

// CheckInRequest is the request body for POST /events/{eventID}/checkin.
type CheckInRequest struct {
	AttendeeID string `json:"attendeeId"`
}

// Validate implements helpers.Validator.
func (r CheckInRequest) Validate() []string {
	if strings.TrimSpace(r.AttendeeID) == "" {
		return []string{"attendeeId is required"}
	}
	return nil
}

// CheckInConflictResponse is the error envelope for a repeated check-in (409).
// Data holds the timestamp recorded by the first check-in.
type CheckInConflictResponse struct {
	Data  *domain.CheckInResult `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// CheckIn godoc
// @Summary Check an attendee in
// @Description Marks the attendee present with the current server time (UTC, RFC 3339). A second check-in of the same attendee changes nothing and returns 409 with the original time.
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body controllers.CheckInRequest true "Attendee to check in"
// @Success 201 {object} domain.CheckInResult
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} controllers.CheckInConflictResponse "error.code: already_checked_in"
// @Failure 422 {object} helpers.APIResponse "error.code: attendee_not_in_event"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/checkin [post]
func (c *AttendeeController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	eventID := r.PathValue("eventID")

	res, err := c.Service.CheckIn(r.Context(), eventID, req.AttendeeID)
	if err != nil {
		var already *domain.AlreadyCheckedInError
		switch {
		case errors.As(err, &already):
			helpers.WriteJSONErrorWithData(w, http.StatusConflict, helpers.ErrCodeAlreadyCheckedIn,
				"attendee already checked in",
				&domain.CheckInResult{AttendeeID: already.AttendeeID, CheckedInAt: already.CheckedInAt.UTC()},
			)
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "attendeeId is required")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrAttendeeNotInEvent):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeAttendeeNotInEvent, "attendee does not belong to this event")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		}
		return
	}

	c.Logger.InfoContext(r.Context(), "attendee checked in", "event_id", eventID, "attendee_id", res.AttendeeID)
	res.CheckedInAt = res.CheckedInAt.UTC()
	helpers.WriteJSON(w, http.StatusCreated, res)
}
