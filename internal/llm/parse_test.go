package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/aeyeguard/aeyeguard/internal/findings"
)

func TestExtractFindingsPlainArray(t *testing.T) {
	raw := `[{"id":"JAVA-001","title":"SQL Injection","description":"Query built by concatenation","severity":"CRITICAL","line_number":42,"code_snippet":"stmt.executeQuery(sql)","remediation":"Use PreparedStatement","references":["CWE-89"]}]`

	items, err := ExtractFindings(raw, "Main.java")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(items))
	}

	f := items[0]
	if f.ID != "JAVA-001" {
		t.Errorf("ID = %q", f.ID)
	}
	if f.Severity != findings.SeverityCritical {
		t.Errorf("Severity = %q", f.Severity)
	}
	if f.LineNumber != 42 {
		t.Errorf("LineNumber = %d", f.LineNumber)
	}
	if f.FilePath != "Main.java" {
		t.Errorf("FilePath = %q", f.FilePath)
	}
	if len(f.References) != 1 || f.References[0] != "CWE-89" {
		t.Errorf("References = %v", f.References)
	}
}

func TestExtractFindingsWrappedInProseAndFence(t *testing.T) {
	raw := "Here is my analysis of the code:\n```json\n[{\"id\":\"CSHARP-001\",\"title\":\"Weak hash\",\"description\":\"MD5 in use\",\"severity\":\"HIGH\",\"line_number\":7}]\n```\nLet me know if you need more detail."

	items, err := ExtractFindings(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(items))
	}
	if items[0].Title != "Weak hash" {
		t.Errorf("Title = %q", items[0].Title)
	}
}

func TestExtractFindingsEmptyArray(t *testing.T) {
	items, err := ExtractFindings("No issues found: []", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no findings, got %d", len(items))
	}
}

func TestExtractFindingsUnparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose only", "The code looks fine to me."},
		{"broken json", "[{\"id\": \"X-1\", missing"},
		{"empty", ""},
		{"object not array", `{"id":"X-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ExtractFindings(tt.raw, "")
			if !errors.Is(err, ErrUnparseable) {
				t.Fatalf("expected ErrUnparseable, got %v", err)
			}
			if len(items) != 0 {
				t.Fatalf("expected no findings, got %d", len(items))
			}
		})
	}
}

func TestExtractFindingsSkipsMalformedEntries(t *testing.T) {
	raw := `[{"id":"A-1","title":"ok","severity":"LOW"},{"id":"A-2","line_number":{"bad":"shape"}},{"id":"A-3","title":"also ok","severity":"HIGH"}]`

	items, err := ExtractFindings(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 findings after skipping malformed entry, got %d", len(items))
	}
	if items[0].ID != "A-1" || items[1].ID != "A-3" {
		t.Fatalf("wrong entries kept: %q, %q", items[0].ID, items[1].ID)
	}
}

func TestExtractFindingsDefaults(t *testing.T) {
	raw := `[{"severity":"made-up"}]`

	items, err := ExtractFindings(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(items))
	}

	f := items[0]
	if !strings.HasPrefix(f.ID, "SEC-") {
		t.Errorf("expected generated SEC- id, got %q", f.ID)
	}
	if f.Title != "Security Issue" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Description != "No description provided" {
		t.Errorf("Description = %q", f.Description)
	}
	if f.Severity != findings.SeverityMedium {
		t.Errorf("Severity = %q, want MEDIUM fallback", f.Severity)
	}
}

func TestExtractFindingsQuotedLineNumber(t *testing.T) {
	raw := `[{"id":"X-1","title":"t","severity":"LOW","line_number":"13"}]`

	items, err := ExtractFindings(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].LineNumber != 13 {
		t.Errorf("LineNumber = %d, want 13", items[0].LineNumber)
	}
}

func TestExtractFindingsSingleStringReference(t *testing.T) {
	raw := `[{"id":"X-1","title":"t","severity":"LOW","references":"OWASP-A03"}]`

	items, err := ExtractFindings(raw, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items[0].References) != 1 || items[0].References[0] != "OWASP-A03" {
		t.Errorf("References = %v", items[0].References)
	}
}
