package handler

import (
	"github.com/gin-gonic/gin"
	scheduleapp "github.com/packtrack/backend/internal/application/schedule"
	"github.com/packtrack/backend/internal/interfaces/http/middleware"
)

// ScheduleHandler handles schedule-event API endpoints
type ScheduleHandler struct {
	BaseHandler
	service *scheduleapp.EventService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(service *scheduleapp.EventService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// List returns events ordered by start time, annotated with their links
func (h *ScheduleHandler) List(c *gin.Context) {
	var filter scheduleapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, events)
}

// GetByID returns one event with its linked belongings
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, event)
}

// Create creates an event together with its initial belonging links
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, event)
}

// Update replaces an event's fields and its whole link set
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	var req scheduleapp.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, event)
}

// Delete removes an event and its links
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// LinkedBelongings returns the belongings linked to an event, by name
func (h *ScheduleHandler) LinkedBelongings(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	linked, err := h.service.LinkedBelongings(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, linked)
}
