// Package health reports readiness of the analysis tools and backing
// services.
package health

import (
	"context"
	"database/sql"
	"time"

	"cvreview-backend/internal/analysis"
)

// Service encapsulates health-related checks.
type Service struct {
	Engine *analysis.Orchestrator
	DB     *sql.DB
}

// NewService constructs a health service. db may be nil when running on
// the in-memory repositories.
func NewService(engine *analysis.Orchestrator, db *sql.DB) *Service {
	return &Service{Engine: engine, DB: db}
}

// Report is the health payload.
type Report struct {
	Status   string                         `json:"status"`
	Tools    map[string]analysis.ToolHealth `json:"tools"`
	Database string                         `json:"database"`
}

// Status checks every dependency. A degraded tool never turns the whole
// report unhealthy; only a broken database does.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{Status: "ok", Database: "memory"}
	if s.Engine != nil {
		report.Tools = s.Engine.HealthCheck().Tools
	}
	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			report.Status = "unhealthy"
			report.Database = "down"
		} else {
			report.Database = "ok"
		}
	}
	return report
}
