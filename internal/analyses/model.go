package analyses

import (
	"time"

	"cvreview-backend/internal/analysis"
)

// Analysis statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis represents one resume analysis job. DocumentID is empty when
// the text was submitted inline instead of through an uploaded document.
type Analysis struct {
	ID             string           `json:"id"`
	DocumentID     string           `json:"documentId,omitempty"`
	UserID         string           `json:"userId"`
	JobDescription string           `json:"jobDescription,omitempty"`
	Status         string           `json:"status"`
	Result         *analysis.Result `json:"result,omitempty"`
	ErrorMessage   *string          `json:"errorMessage,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	StartedAt      *time.Time       `json:"startedAt,omitempty"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
