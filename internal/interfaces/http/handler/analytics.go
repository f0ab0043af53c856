package handler

import (
	"github.com/gin-gonic/gin"
	analyticsapp "github.com/packtrack/backend/internal/application/analytics"
)

// AnalyticsHandler handles dashboard analytics endpoints
type AnalyticsHandler struct {
	BaseHandler
	service *analyticsapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service *analyticsapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Overview returns overall progress, per-category counts, recent activity
// and event counts
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	report, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// Progress returns per-date packing snapshots
func (h *AnalyticsHandler) Progress(c *gin.Context) {
	points, err := h.service.Progress(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, points)
}

// TagStats returns tag usage counts, most frequent first
func (h *AnalyticsHandler) TagStats(c *gin.Context) {
	stats, err := h.service.TagStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ScheduleAnalytics returns per-day-type durations and link coverage
func (h *AnalyticsHandler) ScheduleAnalytics(c *gin.Context) {
	report, err := h.service.ScheduleAnalytics(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
