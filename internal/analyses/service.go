package analyses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cvreview-backend/internal/analysis"
	"cvreview-backend/internal/documents"
	"cvreview-backend/internal/extract"
	"cvreview-backend/internal/shared/metrics"
	"cvreview-backend/internal/shared/storage/object"
	"cvreview-backend/internal/shared/telemetry"
)

// ErrEmptyText marks requests whose resume text is blank after trimming.
var ErrEmptyText = analysis.ErrEmptyInput

// Service contains business logic for analyses.
type Service struct {
	Repo    Repo
	Docs    documents.DocumentsRepo
	Store   object.ObjectStore
	Engine  *analysis.Orchestrator
	Timeout time.Duration
}

// AnalyzeText runs a comprehensive analysis on inline text and persists
// the completed record before returning it.
func (s *Service) AnalyzeText(ctx context.Context, userID string, in analysis.Input) (Analysis, error) {
	if userID == "" {
		return Analysis{}, errors.New("userID is required")
	}
	now := time.Now().UTC()
	record := Analysis{
		ID:             uuid.NewString(),
		UserID:         userID,
		JobDescription: in.JobDescription,
		Status:         StatusProcessing,
		CreatedAt:      now,
		StartedAt:      &now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Analysis{}, err
	}
	metrics.IncAnalysisStarted()

	result, err := s.run(ctx, in)
	if err != nil {
		msg := err.Error()
		if updateErr := s.Repo.UpdateStatus(ctx, record.ID, StatusFailed, nil, &msg); updateErr != nil {
			telemetry.Error("analyses.update_failed", map[string]any{"analysis_id": record.ID, "error": updateErr.Error()})
		}
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	if err := s.Repo.UpdateStatus(ctx, record.ID, StatusCompleted, &result, nil); err != nil {
		return Analysis{}, err
	}
	metrics.IncAnalysisCompleted()
	return s.Repo.GetByID(ctx, record.ID)
}

// AnalyzeDocument queues an analysis for an uploaded document and
// completes it asynchronously.
func (s *Service) AnalyzeDocument(ctx context.Context, userID, documentID, jobDescription string, includeGenerative bool) (Analysis, error) {
	if userID == "" || documentID == "" {
		return Analysis{}, errors.New("userID and documentID are required")
	}
	doc, err := s.Docs.GetByID(ctx, userID, documentID)
	if err != nil {
		return Analysis{}, err
	}

	record := Analysis{
		ID:             uuid.NewString(),
		DocumentID:     doc.ID,
		UserID:         userID,
		JobDescription: jobDescription,
		Status:         StatusQueued,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Analysis{}, err
	}
	metrics.IncAnalysisStarted()

	go s.completeAsync(context.Background(), record.ID, doc, jobDescription, includeGenerative)
	return record, nil
}

func (s *Service) completeAsync(ctx context.Context, analysisID string, doc documents.Document, jobDescription string, includeGenerative bool) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	if err := s.Repo.UpdateStatus(ctx, analysisID, StatusProcessing, nil, nil); err != nil {
		telemetry.Error("analyses.update_failed", map[string]any{"analysis_id": analysisID, "error": err.Error()})
		return
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		s.fail(ctx, analysisID, fmt.Errorf("extract text: %w", err))
		return
	}

	result, err := s.run(ctx, analysis.Input{
		Text:              text,
		JobDescription:    jobDescription,
		IncludeStructure:  true,
		IncludeGenerative: includeGenerative,
	})
	if err != nil {
		s.fail(ctx, analysisID, err)
		return
	}
	if err := s.Repo.UpdateStatus(ctx, analysisID, StatusCompleted, &result, nil); err != nil {
		telemetry.Error("analyses.update_failed", map[string]any{"analysis_id": analysisID, "error": err.Error()})
		return
	}
	metrics.IncAnalysisCompleted()
}

func (s *Service) fail(ctx context.Context, analysisID string, cause error) {
	telemetry.Error("analyses.failed", map[string]any{"analysis_id": analysisID, "error": cause.Error()})
	msg := cause.Error()
	if err := s.Repo.UpdateStatus(ctx, analysisID, StatusFailed, nil, &msg); err != nil {
		telemetry.Error("analyses.update_failed", map[string]any{"analysis_id": analysisID, "error": err.Error()})
	}
	metrics.IncAnalysisFailed()
}

// run executes the orchestrator and records duration and degradation
// metrics.
func (s *Service) run(ctx context.Context, in analysis.Input) (analysis.Result, error) {
	start := time.Now()
	result, err := s.Engine.AnalyzeComprehensive(ctx, in)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return analysis.Result{}, err
	}
	if in.IncludeGenerative && !result.Metadata.ToolsUsed.Generative {
		metrics.IncAnalysisDegraded()
	}
	return result, nil
}

// QuickSummary runs the lightweight score without persisting anything.
func (s *Service) QuickSummary(ctx context.Context, text string) (analysis.Summary, error) {
	metrics.IncQuickSummary()
	return s.Engine.QuickSummary(ctx, text)
}

// Get returns an analysis owned by userID.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	a, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if a.UserID != userID {
		return Analysis{}, ErrForbidden
	}
	return a, nil
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Health reports analyzer tool availability.
func (s *Service) Health() analysis.Health {
	return s.Engine.HealthCheck()
}
