package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// EventAttendeeHandler handles event attendance requests
type EventAttendeeHandler struct {
	attendees *service.EventAttendeeService
	log       *logger.Logger
}

// NewEventAttendeeHandler creates a new event attendee handler
func NewEventAttendeeHandler(attendees *service.EventAttendeeService, log *logger.Logger) *EventAttendeeHandler {
	return &EventAttendeeHandler{attendees: attendees, log: log}
}

type createEventAttendeeRequest struct {
	EventID       models.ID `json:"eventId" validate:"required"`
	UserProfileID models.ID `json:"userProfileId" validate:"required"`
}

// List returns a page of attendance records
// GET /api/v1/event-attendees
func (h *EventAttendeeHandler) List(c echo.Context) error {
	attendees, pagination, err := h.attendees.List(c.Request().Context(), listParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	if attendees == nil {
		attendees = []*models.EventAttendee{}
	}
	return c.JSON(http.StatusOK, listResponse{Data: attendees, Pagination: pagination})
}

// ListByEvent returns a page of one event's attendance records
// GET /api/v1/events/:eventId/attendees
func (h *EventAttendeeHandler) ListByEvent(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	attendees, pagination, err := h.attendees.ListByEvent(c.Request().Context(), eventID, listParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	if attendees == nil {
		attendees = []*models.EventAttendee{}
	}
	return c.JSON(http.StatusOK, listResponse{Data: attendees, Pagination: pagination})
}

// Get returns a single attendance record
// GET /api/v1/event-attendees/:id
func (h *EventAttendeeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	a, err := h.attendees.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Create records a user attending an event
// POST /api/v1/event-attendees
func (h *EventAttendeeHandler) Create(c echo.Context) error {
	var req createEventAttendeeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	a, err := h.attendees.Create(c.Request().Context(), req.EventID, req.UserProfileID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// Delete soft deletes an attendance record
// DELETE /api/v1/event-attendees/:id
func (h *EventAttendeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.attendees.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Event attendee deleted successfully"})
}
