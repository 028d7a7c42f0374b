package analyses

import (
	"context"

	"cvreview-backend/internal/analysis"
)

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, a Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	UpdateStatus(ctx context.Context, analysisID, status string, result *analysis.Result, errorMessage *string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
}
