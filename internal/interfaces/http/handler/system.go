package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// DatabasePinger is the subset of the database the health check needs
type DatabasePinger interface {
	Ping() error
}

// SystemHandler handles health and system info endpoints
type SystemHandler struct {
	BaseHandler
	db        DatabasePinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db DatabasePinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse reports service and database status
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Health reports liveness. It always answers 200; a broken database shows
// up in the payload rather than the status code.
func (h *SystemHandler) Health(c *gin.Context) {
	database := "up"
	if h.db == nil || h.db.Ping() != nil {
		database = "down"
	}

	h.Success(c, HealthResponse{
		Status:    "ok",
		Database:  database,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
