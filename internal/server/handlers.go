package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fineprint-dev/fineprint/internal/engine"
	"github.com/fineprint-dev/fineprint/internal/model"
)

// ErrorResponse is the error body shape for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AnalyzeRequest is the payload for POST /v1/analyze.
type AnalyzeRequest struct {
	Text        string                 `json:"text" binding:"required"`
	URL         string                 `json:"url"`
	Language    string                 `json:"language"`
	Preferences *model.UserPreferences `json:"preferences"`
}

// BatchRequest is the payload for POST /v1/analyze/batch.
type BatchRequest struct {
	Items []AnalyzeRequest `json:"items" binding:"required"`
}

// BatchResponse wraps the per-item results of a batch call.
type BatchResponse struct {
	Results []*model.AnalysisResult `json:"results"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "engine_version": engine.Version})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	logger := slog.With("request_id", c.GetString(requestIDKey), "handler", "analyze")

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	if len(req.Text) > engine.MaxTextLength {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "text exceeds maximum length",
			Code:  "TEXT_TOO_LONG",
		})
		return
	}

	c.JSON(http.StatusOK, s.analyzeOne(c, logger, req))
}

func (s *Server) handleBatch(c *gin.Context) {
	logger := slog.With("request_id", c.GetString(requestIDKey), "handler", "batch")

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	if len(req.Items) == 0 || len(req.Items) > engine.MaxBatchSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "batch must contain between 1 and 10 items",
			Code:  "INVALID_BATCH_SIZE",
		})
		return
	}

	for _, item := range req.Items {
		if len(item.Text) > engine.MaxTextLength {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "batch item text exceeds maximum length",
				Code:  "TEXT_TOO_LONG",
			})
			return
		}
	}

	results := make([]*model.AnalysisResult, 0, len(req.Items))
	for _, item := range req.Items {
		results = append(results, s.analyzeOne(c, logger, item))
	}

	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

// analyzeOne runs a single engine call, substituting the fallback result on
// failure: clients always receive a well-formed analysis body.
func (s *Server) analyzeOne(c *gin.Context, logger *slog.Logger, req AnalyzeRequest) *model.AnalysisResult {
	result, err := s.analyzer.Analyze(req.Text, engine.Options{
		URL:         req.URL,
		Language:    req.Language,
		Preferences: req.Preferences,
	})
	if err != nil {
		logger.Error("analysis failed, serving fallback", "error", err)
		fallbacksTotal.Inc()
		return engine.FallbackAnalysis()
	}

	analysesTotal.With(labelsForResult(result)).Inc()
	s.saveRecord(c, logger, req.URL, result)
	return result
}

// saveRecord persists a successful analysis when storage is configured.
// Persistence failures are logged, never surfaced to the client.
func (s *Server) saveRecord(c *gin.Context, logger *slog.Logger, url string, result *model.AnalysisResult) {
	if s.store == nil {
		return
	}

	record := &model.AnalysisRecord{
		ID:        uuid.NewString(),
		URL:       url,
		Source:    "api",
		RiskScore: result.RiskScore,
		RiskLevel: result.RiskLevel,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveAnalysis(c.Request.Context(), record); err != nil {
		logger.Warn("failed to save analysis", "error", err)
	}
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.analyzer.Categories()})
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotImplemented, ErrorResponse{
			Error: "history storage is not configured",
			Code:  "STORAGE_DISABLED",
		})
		return
	}

	records, err := s.store.ListAnalyses(c.Request.Context(), 0)
	if err != nil {
		slog.Error("failed to list analyses", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load history",
			Code:  "STORAGE_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records})
}
