package schedule

import (
	"time"

	"github.com/packtrack/backend/internal/domain/schedule"
)

// CreateEventRequest represents a request to create a schedule event
type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	DayType      string  `json:"day_type" binding:"required,oneof=packing move-in"`
	Notes        string  `json:"notes" binding:"max=2000"`
	BelongingIDs []int64 `json:"belonging_ids"`
}

// UpdateEventRequest replaces the full field set and link set of an event
type UpdateEventRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	DayType      string  `json:"day_type" binding:"required,oneof=packing move-in"`
	Notes        string  `json:"notes" binding:"max=2000"`
	BelongingIDs []int64 `json:"belonging_ids"`
}

// ListFilter represents filter options for the event list
type ListFilter struct {
	DayType string `form:"day_type" binding:"omitempty,oneof=packing move-in"`
}

// EventResponse represents a schedule event in API responses. Linked
// belonging ids and names are always arrays, never null.
type EventResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	DayType        string    `json:"day_type"`
	Notes          string    `json:"notes"`
	BelongingIDs   []int64   `json:"belonging_ids"`
	BelongingNames []string  `json:"belonging_names"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToEventResponse converts a domain Event and its link ids
func ToEventResponse(e *schedule.Event, belongingIDs []int64, belongingNames []string) EventResponse {
	if belongingIDs == nil {
		belongingIDs = []int64{}
	}
	if belongingNames == nil {
		belongingNames = []string{}
	}
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		DayType:        string(e.DayType),
		Notes:          e.Notes,
		BelongingIDs:   belongingIDs,
		BelongingNames: belongingNames,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToEventResponses converts annotated events from the repository
func ToEventResponses(events []schedule.AnnotatedEvent) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		e := &events[i]
		responses = append(responses, ToEventResponse(&e.Event, e.BelongingIDs, e.BelongingNames))
	}
	return responses
}
