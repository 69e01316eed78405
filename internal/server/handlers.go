package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aeyeguard/aeyeguard/internal/analyzer"
	"github.com/aeyeguard/aeyeguard/internal/language"
	"github.com/aeyeguard/aeyeguard/internal/llm"
)

// HealthChecker probes the model endpoint for the health handler.
type HealthChecker interface {
	Health(ctx context.Context) llm.HealthStatus
}

// AnalyzeRequest is the /v1/analyze request body. Language defaults to
// "auto".
type AnalyzeRequest struct {
	Code     string `json:"code" binding:"required"`
	FilePath string `json:"file_path"`
	Language string `json:"language"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	result, err := s.service.Analyze(c.Request.Context(), analyzer.Request{
		Code:     req.Code,
		FilePath: req.FilePath,
		Language: req.Language,
	})
	if err != nil {
		if errors.Is(err, analyzer.ErrUnsupportedLanguage) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s.logger.Error("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
		return
	}

	// Collaborator failures arrive here as a structured "analysis
	// unavailable" result, not an error: the caller still gets a
	// well-formed response to render.
	c.JSON(http.StatusOK, result)
}

// healthResponse mirrors the service health contract: overall status plus
// the model endpoint's own reachability report.
type healthResponse struct {
	Service            string           `json:"service"`
	Version            string           `json:"version"`
	Status             string           `json:"status"`
	LLMService         llm.HealthStatus `json:"llm_service"`
	SupportedLanguages []string         `json:"supported_languages"`
}

func (s *Server) handleHealth(c *gin.Context) {
	llmStatus := s.health.Health(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	if !llmStatus.Available {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, healthResponse{
		Service:            s.versions.Service,
		Version:            s.versions.Version,
		Status:             status,
		LLMService:         llmStatus,
		SupportedLanguages: languageNames(),
	})
}

// languageInfo describes one supported language for the listing endpoint.
type languageInfo struct {
	Language          string   `json:"language"`
	Description       string   `json:"description"`
	Extensions        []string `json:"extensions"`
	AnalyzerAvailable bool     `json:"analyzer_available"`
}

func (s *Server) handleLanguages(c *gin.Context) {
	infos := make([]languageInfo, 0, len(language.Supported))
	for _, lang := range language.Supported {
		infos = append(infos, languageInfo{
			Language:          string(lang),
			Description:       lang.DisplayName(),
			Extensions:        lang.Extensions(),
			AnalyzerAvailable: true,
		})
	}
	c.JSON(http.StatusOK, gin.H{"languages": infos})
}

func languageNames() []string {
	names := make([]string, 0, len(language.Supported))
	for _, lang := range language.Supported {
		names = append(names, string(lang))
	}
	return names
}
