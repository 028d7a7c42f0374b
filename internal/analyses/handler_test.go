package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cvreview-backend/internal/analysis"
	"cvreview-backend/internal/documents"
	"cvreview-backend/internal/shared/server/middleware"
)

func setupAnalysisRouter(t *testing.T) (*gin.Engine, *Service, *MemoryRepo, *documents.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, repo, docRepo := newTestService(t)
	router := gin.New()
	api := router.Group("/api/v1", middleware.Auth("test"))
	NewHandler(svc).RegisterRoutes(api)
	return router, svc, repo, docRepo
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	router, _, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]any{
		"text":              serviceTestCV,
		"includeGenerative": false,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var record Analysis
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if record.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q", StatusCompleted, record.Status)
	}
	if record.Result == nil || record.Result.Scores.Overall <= 0 {
		t.Fatalf("expected scored result, got %+v", record.Result)
	}
	if record.UserID != "guest:test-guest" {
		t.Fatalf("expected guest user id, got %q", record.UserID)
	}
}

func TestAnalyzeTextEndpointEmptyText(t *testing.T) {
	router, _, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]any{"text": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestQuickSummaryEndpoint(t *testing.T) {
	router, _, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses/summary", map[string]any{"text": serviceTestCV})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var summary struct {
		Score float64 `json:"score"`
		Level string  `json:"level"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.Score <= 0 {
		t.Fatalf("expected positive score, got %v", summary.Score)
	}
	if summary.Level == "" {
		t.Fatalf("expected level to be set")
	}
}

func TestAnalyzeDocumentEndpoint(t *testing.T) {
	router, svc, repo, docRepo := setupAnalysisRouter(t)
	doc := seedTextDocument(t, svc, docRepo, "guest:test-guest")

	resp := postJSON(t, router, "/api/v1/documents/"+doc.ID+"/analyze", map[string]any{
		"jobDescription":    "Desenvolvedor Go com Docker.",
		"includeGenerative": false,
	})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		AnalysisID string `json:"analysisId"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.AnalysisID == "" {
		t.Fatalf("expected analysisId, got empty")
	}
	if created.Status != StatusQueued {
		t.Fatalf("expected status %q, got %q", StatusQueued, created.Status)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		got, err := repo.GetByID(context.Background(), created.AnalysisID)
		if err != nil {
			t.Fatalf("get analysis: %v", err)
		}
		if got.Status == StatusCompleted {
			break
		}
		if got.Status == StatusFailed {
			t.Fatalf("analysis failed: %v", got.ErrorMessage)
		}
		if time.Now().After(deadline) {
			t.Fatalf("analysis did not complete, status %q", got.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAnalyzeDocumentEndpointUnknownDocument(t *testing.T) {
	router, _, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/documents/missing/analyze", map[string]any{})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestGetAnalysisHidesOtherUsers(t *testing.T) {
	router, svc, _, _ := setupAnalysisRouter(t)

	record, err := svc.AnalyzeText(context.Background(), "user-other", analysis.Input{Text: serviceTestCV, IncludeStructure: true})
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+record.ID, nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListAnalysesEndpoint(t *testing.T) {
	router, svc, _, _ := setupAnalysisRouter(t)

	if _, err := svc.AnalyzeText(context.Background(), "guest:test-guest", analysis.Input{Text: serviceTestCV, IncludeStructure: true}); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var listed struct {
		Analyses []Analysis `json:"analyses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed.Analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(listed.Analyses))
	}
}
