package analytics

import (
	"context"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
)

// ItemTotals is a read model for overall packing counts
type ItemTotals struct {
	TotalItems  int64 `json:"total_items"`
	PackedItems int64 `json:"packed_items"`
}

// CategoryCount is a read model for per-category packing counts
type CategoryCount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Packed   int64  `json:"packed"`
}

// ActivityPoint counts belongings updated on a calendar date
type ActivityPoint struct {
	Date         string `json:"date"`
	ItemsUpdated int64  `json:"items_updated"`
}

// EventCount counts schedule events per day type
type EventCount struct {
	DayType schedule.DayType `json:"day_type"`
	Count   int64            `json:"event_count"`
}

// ProgressPoint is a per-date packing snapshot. Dates come from the last
// update timestamp, so an item repacked later moves to the newer date.
type ProgressPoint struct {
	Date        string `json:"date"`
	PackedItems int64  `json:"packed_items"`
	TotalItems  int64  `json:"total_items"`
}

// LinkStat counts events carrying belonging links per day type
type LinkStat struct {
	DayType         schedule.DayType `json:"day_type"`
	EventsWithItems int64            `json:"events_with_items"`
	TotalEvents     int64            `json:"total_events"`
}

// AnalyticsRepository is the read-side interface feeding the aggregator.
// It returns raw counts and sequences; derived figures (percentages, tag
// frequencies, durations) are computed above the store so they stay
// identical across SQLite and Postgres.
type AnalyticsRepository interface {
	// ItemTotals returns overall and packed item counts
	ItemTotals(ctx context.Context) (ItemTotals, error)

	// CategoryCounts returns per-category totals, ascending by category
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)

	// RecentActivity returns per-date update counts for the last n days,
	// newest first
	RecentActivity(ctx context.Context, days int) ([]ActivityPoint, error)

	// EventCounts returns event counts per day type
	EventCounts(ctx context.Context) ([]EventCount, error)

	// ProgressByDate returns per-date packing snapshots, ascending by date
	ProgressByDate(ctx context.Context) ([]ProgressPoint, error)

	// TagSets returns the tag sequence of every belonging
	TagSets(ctx context.Context) ([]belonging.Tags, error)

	// EventsByDayType returns all events grouped by day type
	EventsByDayType(ctx context.Context) (map[schedule.DayType][]schedule.Event, error)

	// LinkStats returns linked-event counts per day type
	LinkStats(ctx context.Context) ([]LinkStat, error)
}
