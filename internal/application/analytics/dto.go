package analytics

import "github.com/packtrack/backend/internal/domain/analytics"

// OverviewTotals summarizes overall packing progress
type OverviewTotals struct {
	TotalItems  int64 `json:"total_items"`
	PackedItems int64 `json:"packed_items"`
	Percentage  int   `json:"percentage"`
}

// OverviewResponse is the dashboard overview report
type OverviewResponse struct {
	Overview       OverviewTotals            `json:"overview"`
	Categories     []analytics.CategoryCount `json:"categories"`
	RecentActivity []analytics.ActivityPoint `json:"recentActivity"`
	ScheduleEvents []analytics.EventCount    `json:"scheduleEvents"`
}

// TagStat is a tag usage count
type TagStat struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// DurationStat summarizes the events of one day type
type DurationStat struct {
	DayType            string  `json:"day_type"`
	EventCount         int64   `json:"event_count"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
}

// ScheduleAnalyticsResponse is the schedule report
type ScheduleAnalyticsResponse struct {
	Duration    []DurationStat       `json:"duration"`
	LinkedItems []analytics.LinkStat `json:"linkedItems"`
}
