// Package analyzer runs the analysis pipeline: resolve the language, strip
// comments, prompt the model, and shape its answer into typed findings.
package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/aeyeguard/aeyeguard/internal/findings"
	"github.com/aeyeguard/aeyeguard/internal/language"
	"github.com/aeyeguard/aeyeguard/internal/llm"
	"github.com/aeyeguard/aeyeguard/internal/preprocess"
)

// ErrUnsupportedLanguage is returned when neither the hint, the file path,
// nor the code content resolves to an analyzable language.
var ErrUnsupportedLanguage = errors.New("unable to detect language or unsupported language type")

// Collaborator is the slice of the model client the pipeline needs.
type Collaborator interface {
	Analyze(ctx context.Context, code, rulesPrompt string) (string, error)
}

// Request describes one analysis invocation. Language may be empty or
// "auto" for automatic detection.
type Request struct {
	Code     string
	FilePath string
	Language string
}

// Metadata carries per-analysis observability fields.
type Metadata struct {
	TotalIssues     int    `json:"total_issues"`
	Analyzer        string `json:"analyzer"`
	DetectionMethod string `json:"detection_method"`
	Status          string `json:"status"`
	findings.SeverityCounts
	Warnings []string `json:"warnings,omitempty"`
}

// Result is always well-formed, including when the collaborator was
// unreachable: callers render partial results, they never see a crash.
type Result struct {
	Language language.Language  `json:"language"`
	Findings []findings.Finding `json:"issues"`
	Summary  string             `json:"summary"`
	Metadata Metadata           `json:"analysis_metadata"`
}

const (
	statusCompleted   = "COMPLETED"
	statusUnavailable = "UNAVAILABLE"
)

// Service wires the deterministic preprocessing core to the collaborator.
type Service struct {
	llm    Collaborator
	logger hclog.Logger
}

func New(collaborator Collaborator, logger hclog.Logger) *Service {
	return &Service{
		llm:    collaborator,
		logger: logger,
	}
}

// Analyze performs security analysis on the request's code. It fails only
// for unsupported languages; collaborator and parsing failures degrade into
// a well-formed result with explanatory metadata.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	lang, method := language.Detect(req.Language, req.FilePath, req.Code)
	if lang == language.Unknown {
		return nil, ErrUnsupportedLanguage
	}

	prompt, ok := rulesPrompt(lang)
	if !ok {
		return nil, fmt.Errorf("%w: no analyzer available for %s", ErrUnsupportedLanguage, lang)
	}

	s.logger.Debug("analyzing code", "language", lang, "detection_method", method, "file", req.FilePath)

	var warnings []string
	pre := preprocess.StripComments(lang, req.Code)
	if pre.Degraded {
		warnings = append(warnings, "preprocessing degraded: unterminated block comment, remainder treated as commented out")
		s.logger.Warn("comment stripping degraded", "file", req.FilePath)
	}

	raw, err := s.llm.Analyze(ctx, pre.Code, prompt)
	if err != nil {
		s.logger.Error("model analysis failed", "language", lang, "error", err)
		return unavailableResult(lang, method, err), nil
	}

	items, err := llm.ExtractFindings(raw, req.FilePath)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("response parsing: %v", err))
		s.logger.Warn("model response was not parseable", "language", lang)
	}

	result := &Result{
		Language: lang,
		Findings: items,
		Summary:  findings.Summarize(items),
		Metadata: Metadata{
			TotalIssues:     len(items),
			Analyzer:        analyzerName(lang),
			DetectionMethod: string(method),
			Status:          statusCompleted,
			SeverityCounts:  findings.CountBySeverity(items),
			Warnings:        warnings,
		},
	}

	s.logger.Info("analysis completed", "language", lang, "issues", len(items))
	return result, nil
}

// unavailableResult shapes a collaborator failure into the structured
// "analysis unavailable" outcome required at the service boundary.
func unavailableResult(lang language.Language, method language.Method, err error) *Result {
	return &Result{
		Language: lang,
		Findings: []findings.Finding{},
		Summary:  fmt.Sprintf("Analysis unavailable: %v", err),
		Metadata: Metadata{
			Analyzer:        analyzerName(lang),
			DetectionMethod: string(method),
			Status:          statusUnavailable,
			Warnings:        []string{err.Error()},
		},
	}
}

func analyzerName(lang language.Language) string {
	switch lang {
	case language.CSharp:
		return "CSharpSecurityAnalyzer"
	case language.ReactTypeScript:
		return "ReactTypeScriptAnalyzer"
	case language.ReactJavaScript:
		return "ReactJavaScriptAnalyzer"
	case language.Java:
		return "JavaSecurityAnalyzer"
	default:
		return "UnknownAnalyzer"
	}
}
