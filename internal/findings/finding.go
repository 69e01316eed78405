package findings

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Severity of a security finding.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// ParseSeverity maps a model-supplied severity string to a Severity.
// Unrecognised values fall back to MEDIUM rather than failing the finding.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToUpper(strings.TrimSpace(s))) {
	case SeverityLow:
		return SeverityLow
	case SeverityHigh:
		return SeverityHigh
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}

// Finding is a single security issue extracted from the model response.
// Findings are immutable once created.
type Finding struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Severity     Severity `json:"severity"`
	LineNumber   int      `json:"line_number,omitempty"`
	ColumnNumber int      `json:"column_number,omitempty"`
	FilePath     string   `json:"file_path,omitempty"`
	CodeSnippet  string   `json:"code_snippet,omitempty"`
	Remediation  string   `json:"remediation,omitempty"`
	References   []string `json:"references,omitempty"`
}

// NewID generates a finding identifier for results where the model did not
// provide one.
func NewID() string {
	return "SEC-" + uuid.New().String()[:8]
}

// SeverityCounts holds per-severity totals for a finding set.
type SeverityCounts struct {
	Critical int `json:"critical_count"`
	High     int `json:"high_count"`
	Medium   int `json:"medium_count"`
	Low      int `json:"low_count"`
}

// CountBySeverity tallies findings per severity level.
func CountBySeverity(items []Finding) SeverityCounts {
	var c SeverityCounts
	for _, f := range items {
		switch f.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityMedium:
			c.Medium++
		case SeverityLow:
			c.Low++
		}
	}
	return c
}

// Summarize produces a one-line human summary of a finding set.
func Summarize(items []Finding) string {
	if len(items) == 0 {
		return "No security issues detected."
	}

	c := CountBySeverity(items)
	var parts []string
	if c.Critical > 0 {
		parts = append(parts, fmt.Sprintf("%d critical", c.Critical))
	}
	if c.High > 0 {
		parts = append(parts, fmt.Sprintf("%d high", c.High))
	}
	if c.Medium > 0 {
		parts = append(parts, fmt.Sprintf("%d medium", c.Medium))
	}
	if c.Low > 0 {
		parts = append(parts, fmt.Sprintf("%d low", c.Low))
	}

	return fmt.Sprintf("Found %d security issue(s): %s severity.", len(items), strings.Join(parts, ", "))
}
