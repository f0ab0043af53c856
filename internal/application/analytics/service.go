package analytics

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/packtrack/backend/internal/domain/analytics"
	"github.com/packtrack/backend/internal/domain/schedule"
)

const (
	overviewCacheKey   = "overview"
	recentActivityDays = 7
)

// ReportCache reads and writes serialized reports. This decouples
// AnalyticsService from the concrete cache implementation.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// AnalyticsService aggregates read models into the dashboard reports
type AnalyticsService struct {
	repo  analytics.AnalyticsRepository
	cache ReportCache
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(repo analytics.AnalyticsRepository, cache ReportCache) *AnalyticsService {
	return &AnalyticsService{
		repo:  repo,
		cache: cache,
	}
}

// Overview builds the dashboard overview report. The serialized report is
// cached; writes to belongings or events invalidate it.
func (s *AnalyticsService) Overview(ctx context.Context) (*OverviewResponse, error) {
	if payload, ok := s.cache.Get(ctx, overviewCacheKey); ok {
		var cached OverviewResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	totals, err := s.repo.ItemTotals(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	activity, err := s.repo.RecentActivity(ctx, recentActivityDays)
	if err != nil {
		return nil, err
	}

	eventCounts, err := s.repo.EventCounts(ctx)
	if err != nil {
		return nil, err
	}

	response := &OverviewResponse{
		Overview: OverviewTotals{
			TotalItems:  totals.TotalItems,
			PackedItems: totals.PackedItems,
			Percentage:  schedule.Percentage(int(totals.PackedItems), int(totals.TotalItems)),
		},
		Categories:     emptyIfNil(categories),
		RecentActivity: emptyIfNil(activity),
		ScheduleEvents: emptyIfNil(eventCounts),
	}

	if payload, err := json.Marshal(response); err == nil {
		s.cache.Set(ctx, overviewCacheKey, payload)
	}
	return response, nil
}

// Progress returns per-date packing snapshots, ascending by date. Dates
// come from the last update timestamp, so an item repacked later moves to
// the newer date.
func (s *AnalyticsService) Progress(ctx context.Context) ([]analytics.ProgressPoint, error) {
	points, err := s.repo.ProgressByDate(ctx)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(points), nil
}

// TagStats returns tag usage counts, most frequent first. Frequencies are
// computed here rather than in SQL so the JSON-encoded tag column behaves
// the same on SQLite and Postgres.
func (s *AnalyticsService) TagStats(ctx context.Context) ([]TagStat, error) {
	tagSets, err := s.repo.TagSets(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, tags := range tagSets {
		for _, tag := range tags {
			counts[tag]++
		}
	}

	stats := make([]TagStat, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, TagStat{Tag: tag, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats, nil
}

// ScheduleAnalytics reports per-day-type event counts, average durations
// and link coverage
func (s *AnalyticsService) ScheduleAnalytics(ctx context.Context) (*ScheduleAnalyticsResponse, error) {
	byDayType, err := s.repo.EventsByDayType(ctx)
	if err != nil {
		return nil, err
	}

	durations := make([]DurationStat, 0, 2)
	for _, dayType := range []schedule.DayType{schedule.DayTypePacking, schedule.DayTypeMoveIn} {
		events := byDayType[dayType]
		if len(events) == 0 {
			continue
		}
		durations = append(durations, DurationStat{
			DayType:            string(dayType),
			EventCount:         int64(len(events)),
			AvgDurationMinutes: schedule.AverageDuration(events),
		})
	}

	linkStats, err := s.repo.LinkStats(ctx)
	if err != nil {
		return nil, err
	}

	return &ScheduleAnalyticsResponse{
		Duration:    durations,
		LinkedItems: emptyIfNil(linkStats),
	}, nil
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
