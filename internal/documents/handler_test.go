package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cvreview-backend/internal/shared/server/middleware"
	local "cvreview-backend/internal/shared/storage/object/local"
)

const testResume = `Contato: dev@example.com
Experiencia profissional: desenvolvi 3 servicos em Go.
`

func setupDocumentsRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	svc := &Service{
		Store: local.New(t.TempDir()),
		Repo:  repo,
	}
	router := gin.New()
	api := router.Group("/api/v1", middleware.Auth("test"))
	NewHandler(svc).RegisterRoutes(api)
	return router, repo
}

func uploadFile(t *testing.T, router *gin.Engine, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUploadDocument(t *testing.T) {
	router, repo := setupDocumentsRouter(t)

	resp := uploadFile(t, router, "cv.txt", []byte(testResume))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created DocumentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if created.FileName != "cv.txt" {
		t.Fatalf("expected fileName cv.txt, got %q", created.FileName)
	}
	if created.SizeBytes != int64(len(testResume)) {
		t.Fatalf("expected size %d, got %d", len(testResume), created.SizeBytes)
	}
	if created.ExtractedAt == nil {
		t.Fatalf("expected text extraction to run on upload")
	}

	stored, err := repo.GetByID(context.Background(), "guest:test-guest", created.DocumentID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.ExtractedTextKey == "" {
		t.Fatalf("expected extracted text key to be recorded")
	}
}

func TestUploadDocumentMissingFile(t *testing.T) {
	router, _ := setupDocumentsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCurrentDocument(t *testing.T) {
	router, _ := setupDocumentsRouter(t)

	if resp := uploadFile(t, router, "first.txt", []byte(testResume)); resp.Code != http.StatusCreated {
		t.Fatalf("upload first: %d", resp.Code)
	}
	if resp := uploadFile(t, router, "second.txt", []byte(testResume)); resp.Code != http.StatusCreated {
		t.Fatalf("upload second: %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var current DocumentResponse
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if current.FileName != "second.txt" {
		t.Fatalf("expected most recent upload, got %q", current.FileName)
	}
}

func TestCurrentDocumentNotFound(t *testing.T) {
	router, _ := setupDocumentsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListDocumentsRequiresLogin(t *testing.T) {
	router, _ := setupDocumentsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest, got %d", resp.Code)
	}
}
