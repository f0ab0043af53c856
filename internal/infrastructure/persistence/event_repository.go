package persistence

import (
	"context"
	"errors"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
	"github.com/packtrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// FindByID finds an event by its ID
func (r *GormEventRepository) FindByID(ctx context.Context, id int64) (*schedule.Event, error) {
	var e schedule.Event
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAll finds events annotated with their links, ordered by start time.
// Link aggregation happens here rather than in SQL so the result is the
// same on sqlite and postgres.
func (r *GormEventRepository) FindAll(ctx context.Context, dayType schedule.DayType) ([]schedule.AnnotatedEvent, error) {
	events := []schedule.Event{}
	query := r.db.WithContext(ctx).Model(&schedule.Event{})
	if dayType != "" {
		query = query.Where("day_type = ?", dayType)
	}
	if err := query.Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	type linkRow struct {
		EventID     int64
		BelongingID int64
		Name        string
	}
	links := []linkRow{}
	err := r.db.WithContext(ctx).
		Table("event_belongings").
		Select("event_belongings.event_id, event_belongings.belonging_id, belongings.name").
		Joins("JOIN belongings ON belongings.id = event_belongings.belonging_id").
		Order("belongings.name ASC").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}

	idsByEvent := make(map[int64][]int64, len(events))
	namesByEvent := make(map[int64][]string, len(events))
	for _, link := range links {
		idsByEvent[link.EventID] = append(idsByEvent[link.EventID], link.BelongingID)
		namesByEvent[link.EventID] = append(namesByEvent[link.EventID], link.Name)
	}

	annotated := make([]schedule.AnnotatedEvent, 0, len(events))
	for _, e := range events {
		entry := schedule.AnnotatedEvent{
			Event:          e,
			BelongingIDs:   idsByEvent[e.ID],
			BelongingNames: namesByEvent[e.ID],
		}
		if entry.BelongingIDs == nil {
			entry.BelongingIDs = []int64{}
		}
		if entry.BelongingNames == nil {
			entry.BelongingNames = []string{}
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

// Save creates an event together with its initial belonging links
func (r *GormEventRepository) Save(ctx context.Context, e *schedule.Event, belongingIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return insertLinks(tx, e.ID, belongingIDs)
	})
}

// Update persists the event and replaces its full link set. The delete
// and reinsert share one transaction so a failure cannot strand the event
// without its links.
func (r *GormEventRepository) Update(ctx context.Context, e *schedule.Event, belongingIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schedule.Event{}).
			Where("id = ?", e.ID).
			Select("title", "start_time", "end_time", "day_type", "notes", "updated_at").
			Updates(e)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Delete(&schedule.EventBelonging{}, "event_id = ?", e.ID).Error; err != nil {
			return err
		}
		return insertLinks(tx, e.ID, belongingIDs)
	})
}

// Delete removes an event and its links
func (r *GormEventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&schedule.Event{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&schedule.EventBelonging{}, "event_id = ?", id).Error
	})
}

// FindLinkedBelongings returns the belongings linked to an event, by name
func (r *GormEventRepository) FindLinkedBelongings(ctx context.Context, eventID int64) ([]belonging.Belonging, error) {
	items := []belonging.Belonging{}
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Joins("JOIN event_belongings ON event_belongings.belonging_id = belongings.id").
		Where("event_belongings.event_id = ?", eventID).
		Order("belongings.name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func insertLinks(tx *gorm.DB, eventID int64, belongingIDs []int64) error {
	if len(belongingIDs) == 0 {
		return nil
	}
	links := make([]schedule.EventBelonging, 0, len(belongingIDs))
	for _, belongingID := range belongingIDs {
		links = append(links, schedule.EventBelonging{
			EventID:     eventID,
			BelongingID: belongingID,
		})
	}
	return tx.Create(&links).Error
}
