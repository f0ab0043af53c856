package schedule

import (
	"context"

	"github.com/packtrack/backend/internal/domain/belonging"
)

// AnnotatedEvent is an event carrying its linked belonging ids and names.
// Both slices are present even when the event has no links.
type AnnotatedEvent struct {
	Event
	BelongingIDs   []int64  `json:"belonging_ids"`
	BelongingNames []string `json:"belonging_names"`
}

// EventRepository defines the interface for schedule event persistence.
// Writes that touch both the event and its links run in one transaction.
type EventRepository interface {
	// FindByID finds an event by its ID
	FindByID(ctx context.Context, id int64) (*Event, error)

	// FindAll finds events annotated with their links, ordered by start time.
	// An empty dayType returns both days.
	FindAll(ctx context.Context, dayType DayType) ([]AnnotatedEvent, error)

	// Save creates an event together with its initial belonging links
	Save(ctx context.Context, e *Event, belongingIDs []int64) error

	// Update persists the event and replaces its full link set
	Update(ctx context.Context, e *Event, belongingIDs []int64) error

	// Delete removes an event and its links
	Delete(ctx context.Context, id int64) error

	// FindLinkedBelongings returns the belongings linked to an event, by name
	FindLinkedBelongings(ctx context.Context, eventID int64) ([]belonging.Belonging, error)
}
