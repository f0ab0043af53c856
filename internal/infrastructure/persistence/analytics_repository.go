package persistence

import (
	"context"
	"time"

	"github.com/packtrack/backend/internal/domain/analytics"
	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements AnalyticsRepository using GORM.
// Queries stick to COUNT/SUM/DATE so they run unchanged on sqlite and
// postgres; anything fancier is computed by the aggregator in Go.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// ItemTotals returns overall and packed item counts
func (r *GormAnalyticsRepository) ItemTotals(ctx context.Context) (analytics.ItemTotals, error) {
	var totals analytics.ItemTotals
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Select("COUNT(*) AS total_items, COALESCE(SUM(CASE WHEN status = 'packed' THEN 1 ELSE 0 END), 0) AS packed_items").
		Scan(&totals).Error
	return totals, err
}

// CategoryCounts returns per-category totals, ascending by category
func (r *GormAnalyticsRepository) CategoryCounts(ctx context.Context) ([]analytics.CategoryCount, error) {
	counts := []analytics.CategoryCount{}
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Select("category, COUNT(*) AS total, SUM(CASE WHEN status = 'packed' THEN 1 ELSE 0 END) AS packed").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	return counts, err
}

// RecentActivity returns per-date update counts for the last n days, newest first
func (r *GormAnalyticsRepository) RecentActivity(ctx context.Context, days int) ([]analytics.ActivityPoint, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	points := []analytics.ActivityPoint{}
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Select("DATE(updated_at) AS date, COUNT(*) AS items_updated").
		Where("updated_at >= ?", cutoff).
		Group("DATE(updated_at)").
		Order("date DESC").
		Scan(&points).Error
	return points, err
}

// EventCounts returns event counts per day type
func (r *GormAnalyticsRepository) EventCounts(ctx context.Context) ([]analytics.EventCount, error) {
	counts := []analytics.EventCount{}
	err := r.db.WithContext(ctx).Model(&schedule.Event{}).
		Select("day_type, COUNT(*) AS count").
		Group("day_type").
		Order("day_type ASC").
		Scan(&counts).Error
	return counts, err
}

// ProgressByDate returns per-date packing snapshots, ascending by date.
// The snapshot is keyed on the last update timestamp, so repacking an item
// moves it to the newer date.
func (r *GormAnalyticsRepository) ProgressByDate(ctx context.Context) ([]analytics.ProgressPoint, error) {
	points := []analytics.ProgressPoint{}
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Select("DATE(updated_at) AS date, SUM(CASE WHEN status = 'packed' THEN 1 ELSE 0 END) AS packed_items, COUNT(*) AS total_items").
		Group("DATE(updated_at)").
		Order("date ASC").
		Scan(&points).Error
	return points, err
}

// TagSets returns the tag sequence of every belonging
func (r *GormAnalyticsRepository) TagSets(ctx context.Context) ([]belonging.Tags, error) {
	var tagSets []belonging.Tags
	err := r.db.WithContext(ctx).Model(&belonging.Belonging{}).
		Pluck("tags", &tagSets).Error
	return tagSets, err
}

// EventsByDayType returns all events grouped by day type
func (r *GormAnalyticsRepository) EventsByDayType(ctx context.Context) (map[schedule.DayType][]schedule.Event, error) {
	events := []schedule.Event{}
	if err := r.db.WithContext(ctx).Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	grouped := make(map[schedule.DayType][]schedule.Event)
	for _, e := range events {
		grouped[e.DayType] = append(grouped[e.DayType], e)
	}
	return grouped, nil
}

// LinkStats returns linked-event counts per day type
func (r *GormAnalyticsRepository) LinkStats(ctx context.Context) ([]analytics.LinkStat, error) {
	stats := []analytics.LinkStat{}
	err := r.db.WithContext(ctx).Model(&schedule.Event{}).
		Select("schedule_events.day_type, COUNT(DISTINCT schedule_events.id) AS total_events, COUNT(DISTINCT event_belongings.event_id) AS events_with_items").
		Joins("LEFT JOIN event_belongings ON event_belongings.event_id = schedule_events.id").
		Group("schedule_events.day_type").
		Order("schedule_events.day_type ASC").
		Scan(&stats).Error
	return stats, err
}
