package analyses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvreview-backend/internal/analysis"
	"cvreview-backend/internal/documents"
	"cvreview-backend/internal/shared/server/middleware"
	"cvreview-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyzeText)
	rg.POST("/analyses/summary", h.quickSummary)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/documents/:id/analyze", h.analyzeDocument)
}

type analyzeRequest struct {
	Text              string `json:"text"`
	JobDescription    string `json:"jobDescription"`
	IncludeStructure  *bool  `json:"includeStructure"`
	IncludeGenerative *bool  `json:"includeGenerative"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	in := analysis.Input{
		Text:              req.Text,
		JobDescription:    req.JobDescription,
		IncludeStructure:  true,
		IncludeGenerative: true,
	}
	if req.IncludeStructure != nil {
		in.IncludeStructure = *req.IncludeStructure
	}
	if req.IncludeGenerative != nil {
		in.IncludeGenerative = *req.IncludeGenerative
	}

	record, err := h.Svc.AnalyzeText(c.Request.Context(), userID, in)
	if err != nil {
		c.Set("statusTransition", StatusProcessing+"->"+StatusFailed)
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume text is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}
	c.Set("analysisId", record.ID)
	c.Set("statusTransition", StatusProcessing+"->"+StatusCompleted)
	respond.OK(c, record)
}

type summaryRequest struct {
	Text string `json:"text"`
}

func (h *Handler) quickSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	summary, err := h.Svc.QuickSummary(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume text is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize resume", nil)
		}
		return
	}
	respond.OK(c, summary)
}

type analyzeDocumentRequest struct {
	JobDescription    string `json:"jobDescription"`
	IncludeGenerative *bool  `json:"includeGenerative"`
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	// Body is optional for document analyses.
	var req analyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = analyzeDocumentRequest{}
	}
	includeGenerative := true
	if req.IncludeGenerative != nil {
		includeGenerative = *req.IncludeGenerative
	}

	c.Set("documentId", documentID)
	record, err := h.Svc.AnalyzeDocument(c.Request.Context(), userID, documentID, req.JobDescription, includeGenerative)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		}
		return
	}
	c.Set("analysisId", record.ID)
	respond.JSON(c, http.StatusAccepted, gin.H{
		"analysisId": record.ID,
		"status":     record.Status,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	c.Set("analysisId", analysisID)
	record, err := h.Svc.Get(c.Request.Context(), userID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.OK(c, record)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit := parseIntDefault(c.Query("limit"), 20)
	offset := parseIntDefault(c.Query("offset"), 0)

	records, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, gin.H{"analyses": records})
}

func parseIntDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
