package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"cvreview-backend/internal/analysis"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, a Analysis) error {
	const query = `
INSERT INTO analyses (
	id, document_id, user_id, job_description, status, result, error_message,
	created_at, started_at, completed_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	resultPayload, err := marshalResult(a.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		a.ID,
		nullString(a.DocumentID),
		a.UserID,
		a.JobDescription,
		a.Status,
		resultPayload,
		a.ErrorMessage,
		a.CreatedAt,
		a.StartedAt,
		a.CompletedAt,
		a.UpdatedAt,
	)
	return err
}

// GetByID returns an analysis by its ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, document_id, user_id, job_description, status, result, error_message,
	created_at, started_at, completed_at, updated_at
FROM analyses
WHERE id = $1`
	return scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
}

// UpdateStatus updates status, result and error message. Timestamps follow
// the status: processing sets started_at, terminal states set completed_at.
func (r *PGRepo) UpdateStatus(ctx context.Context, analysisID, status string, result *analysis.Result, errorMessage *string) error {
	const query = `
UPDATE analyses
SET status = $2,
	result = COALESCE($3, result),
	error_message = COALESCE($4, error_message),
	started_at = CASE WHEN $2 = 'processing' AND started_at IS NULL THEN $5 ELSE started_at END,
	completed_at = CASE WHEN $2 IN ('completed', 'failed') AND completed_at IS NULL THEN $5 ELSE completed_at END,
	updated_at = $5
WHERE id = $1`
	var resultPayload any
	if result != nil {
		payload, err := marshalResult(result)
		if err != nil {
			return err
		}
		resultPayload = payload
	}
	res, err := r.DB.ExecContext(ctx, query, analysisID, status, resultPayload, errorMessage, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns analyses for a user, newest first, with limit/offset.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	const query = `
SELECT id, document_id, user_id, job_description, status, result, error_message,
	created_at, started_at, completed_at, updated_at
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var (
		a          Analysis
		documentID sql.NullString
		resultRaw  []byte
	)
	err := row.Scan(
		&a.ID,
		&documentID,
		&a.UserID,
		&a.JobDescription,
		&a.Status,
		&resultRaw,
		&a.ErrorMessage,
		&a.CreatedAt,
		&a.StartedAt,
		&a.CompletedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}
	a.DocumentID = documentID.String
	if len(resultRaw) > 0 {
		var result analysis.Result
		if err := json.Unmarshal(resultRaw, &result); err != nil {
			return Analysis{}, err
		}
		a.Result = &result
	}
	return a, nil
}

func marshalResult(result *analysis.Result) ([]byte, error) {
	if result == nil {
		return nil, nil
	}
	return json.Marshal(result)
}

func nullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
