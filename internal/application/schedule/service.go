package schedule

import (
	"context"

	appbelonging "github.com/packtrack/backend/internal/application/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
)

// ReportInvalidator drops cached analytics after a write.
// This decouples EventService from the concrete cache implementation.
type ReportInvalidator interface {
	Invalidate(ctx context.Context)
}

// EventService handles schedule-event business operations
type EventService struct {
	repo    schedule.EventRepository
	reports ReportInvalidator
}

// NewEventService creates a new EventService
func NewEventService(repo schedule.EventRepository, reports ReportInvalidator) *EventService {
	return &EventService{
		repo:    repo,
		reports: reports,
	}
}

// List returns events ordered by start time, annotated with their linked
// belonging ids and names. An empty day type returns both days.
func (s *EventService) List(ctx context.Context, filter ListFilter) ([]EventResponse, error) {
	events, err := s.repo.FindAll(ctx, schedule.DayType(filter.DayType))
	if err != nil {
		return nil, err
	}
	return ToEventResponses(events), nil
}

// GetByID retrieves an event by ID, with its links
func (s *EventService) GetByID(ctx context.Context, id int64) (*EventResponse, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.repo.FindLinkedBelongings(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(linked))
	names := make([]string, 0, len(linked))
	for i := range linked {
		ids = append(ids, linked[i].ID)
		names = append(names, linked[i].Name)
	}

	response := ToEventResponse(event, ids, names)
	return &response, nil
}

// Create creates an event together with its initial belonging links. The
// event row and the link rows are written in one transaction.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	event, err := schedule.NewEvent(req.Title, req.StartTime, req.EndTime, schedule.DayType(req.DayType), req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, event, req.BelongingIDs); err != nil {
		return nil, err
	}
	s.reports.Invalidate(ctx)

	response := ToEventResponse(event, req.BelongingIDs, nil)
	return &response, nil
}

// Update replaces the full field set and the full link set. Stale links are
// removed and the requested set reinserted inside the same transaction.
func (s *EventService) Update(ctx context.Context, id int64, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := event.Update(req.Title, req.StartTime, req.EndTime, schedule.DayType(req.DayType), req.Notes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, event, req.BelongingIDs); err != nil {
		return nil, err
	}
	s.reports.Invalidate(ctx)

	response := ToEventResponse(event, req.BelongingIDs, nil)
	return &response, nil
}

// Delete removes an event and its links
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.reports.Invalidate(ctx)
	return nil
}

// LinkedBelongings returns the belongings linked to an event, ordered by
// name. A missing event is reported as not found rather than an empty list.
func (s *EventService) LinkedBelongings(ctx context.Context, eventID int64) ([]appbelonging.BelongingResponse, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	linked, err := s.repo.FindLinkedBelongings(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return appbelonging.ToBelongingResponses(linked), nil
}
