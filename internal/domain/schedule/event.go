package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/packtrack/backend/internal/domain/shared"
)

// DayType partitions the schedule into the two days the tracker covers
type DayType string

const (
	DayTypePacking DayType = "packing"
	DayTypeMoveIn  DayType = "move-in"
)

// IsValid reports whether the day type is a known value
func (d DayType) IsValid() bool {
	return d == DayTypePacking || d == DayTypeMoveIn
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Event represents a scheduled block of time on the packing or move-in day.
// Times are wall-clock HH:MM strings; the fixed width makes lexicographic
// order match chronological order.
type Event struct {
	shared.BaseEntity
	Title     string  `gorm:"type:text;not null" json:"title"`
	StartTime string  `gorm:"type:text;not null" json:"start_time"`
	EndTime   string  `gorm:"type:text;not null" json:"end_time"`
	DayType   DayType `gorm:"type:text;not null" json:"day_type"`
	Notes     string  `gorm:"type:text;default:''" json:"notes"`
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "schedule_events"
}

// EventBelonging links a schedule event to a belonging. The pair is unique;
// rows are removed when either endpoint is deleted.
type EventBelonging struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID     int64     `gorm:"not null;uniqueIndex:idx_event_belonging,priority:1" json:"event_id"`
	BelongingID int64     `gorm:"not null;uniqueIndex:idx_event_belonging,priority:2" json:"belonging_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (EventBelonging) TableName() string {
	return "event_belongings"
}

// NewEvent creates a new schedule event
func NewEvent(title, startTime, endTime string, dayType DayType, notes string) (*Event, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title is required")
	}
	if err := validateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}
	if !dayType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Day type must be 'packing' or 'move-in'")
	}

	return &Event{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		StartTime:  startTime,
		EndTime:    endTime,
		DayType:    dayType,
		Notes:      notes,
	}, nil
}

// Update replaces the full field set and refreshes the update timestamp
func (e *Event) Update(title, startTime, endTime string, dayType DayType, notes string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title is required")
	}
	if err := validateTimeRange(startTime, endTime); err != nil {
		return err
	}
	if !dayType.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Day type must be 'packing' or 'move-in'")
	}

	e.Title = title
	e.StartTime = startTime
	e.EndTime = endTime
	e.DayType = dayType
	e.Notes = notes
	e.Touch()

	return nil
}

func validateTimeRange(startTime, endTime string) error {
	if !clockRe.MatchString(startTime) {
		return shared.NewDomainError("VALIDATION_ERROR", "Start time must be HH:MM")
	}
	if !clockRe.MatchString(endTime) {
		return shared.NewDomainError("VALIDATION_ERROR", "End time must be HH:MM")
	}
	if startTime >= endTime {
		return shared.NewDomainError("VALIDATION_ERROR", "Start time must be before end time")
	}
	return nil
}
