package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cvreview-backend/internal/analysis"
	"cvreview-backend/internal/analysis/scoring"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	record := Analysis{
		ID:             "analysis-1",
		DocumentID:     "doc-1",
		UserID:         "user-1",
		JobDescription: "jd",
		Status:         StatusQueued,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			record.ID,
			record.DocumentID,
			record.UserID,
			record.JobDescription,
			record.Status,
			sqlmock.AnyArg(), // result
			nil,              // error_message
			record.CreatedAt,
			nil, // started_at
			nil, // completed_at
			record.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	result := analysis.Result{
		Scores: scoring.Breakdown{Overall: 72.5, Level: "good"},
	}
	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "document_id", "user_id", "job_description", "status", "result",
		"error_message", "created_at", "started_at", "completed_at", "updated_at",
	}).AddRow("analysis-1", "doc-1", "user-1", "jd", StatusCompleted, payload, nil, now, now, now, now)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Result == nil {
		t.Fatalf("expected decoded result")
	}
	if got.Result.Scores.Overall != 72.5 {
		t.Fatalf("expected overall 72.5, got %v", got.Result.Scores.Overall)
	}
	if got.DocumentID != "doc-1" {
		t.Fatalf("expected document id doc-1, got %q", got.DocumentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	msg := "boom"
	mock.ExpectExec("UPDATE analyses").
		WithArgs("analysis-1", StatusFailed, nil, msg, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), "analysis-1", StatusFailed, nil, &msg); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE analyses").
		WithArgs("missing", StatusProcessing, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", StatusProcessing, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "document_id", "user_id", "job_description", "status", "result",
		"error_message", "created_at", "started_at", "completed_at", "updated_at",
	}).
		AddRow("analysis-2", nil, "user-1", "", StatusQueued, nil, nil, now, nil, nil, now).
		AddRow("analysis-1", "doc-1", "user-1", "jd", StatusCompleted, nil, nil, now.Add(-time.Hour), now, now, now)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(got))
	}
	if got[0].ID != "analysis-2" || got[1].ID != "analysis-1" {
		t.Fatalf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
