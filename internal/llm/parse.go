package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aeyeguard/aeyeguard/internal/findings"
)

// ErrUnparseable marks model text that did not contain an extractable JSON
// array. Callers report it as an annotation alongside an empty finding set;
// it never fails the request.
var ErrUnparseable = errors.New("response contained no parseable JSON array")

// rawIssue mirrors the JSON shape the rules prompts ask the model to emit.
// Line and column numbers arrive as JSON numbers but some models quote them,
// so both are decoded leniently.
type rawIssue struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Severity     string          `json:"severity"`
	LineNumber   flexInt         `json:"line_number"`
	ColumnNumber flexInt         `json:"column_number"`
	FilePath     string          `json:"file_path"`
	CodeSnippet  string          `json:"code_snippet"`
	Remediation  string          `json:"remediation"`
	References   json.RawMessage `json:"references"`
}

// flexInt accepts a JSON number, a quoted number, or null. Anything else is
// an error, which drops the containing entry.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid line/column number %s", data)
	}
	*n = flexInt(v)
	return nil
}

// ExtractFindings pulls a JSON array of issues out of raw model text. Models
// routinely wrap the array in prose or code fences, so extraction takes the
// text between the first '[' and the last ']' and parses that; when no array
// parses, the whole text is tried as a last resort. Individual malformed
// entries are skipped rather than failing the set.
func ExtractFindings(raw, filePath string) ([]findings.Finding, error) {
	payload := raw
	if start := strings.Index(raw, "["); start >= 0 {
		if end := strings.LastIndex(raw, "]"); end > start {
			payload = raw[start : end+1]
		}
	}

	entries, err := decodeArray(payload)
	if err != nil && payload != raw {
		entries, err = decodeArray(raw)
	}
	if err != nil {
		return nil, ErrUnparseable
	}

	out := make([]findings.Finding, 0, len(entries))
	for _, entry := range entries {
		var issue rawIssue
		if err := json.Unmarshal(entry, &issue); err != nil {
			// A malformed entry drops only itself, not the set.
			continue
		}
		out = append(out, toFinding(issue, filePath))
	}
	return out, nil
}

func decodeArray(payload string) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func toFinding(issue rawIssue, filePath string) findings.Finding {
	f := findings.Finding{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Severity:    findings.ParseSeverity(issue.Severity),
		FilePath:    filePath,
		CodeSnippet: issue.CodeSnippet,
		Remediation: issue.Remediation,
		References:  decodeReferences(issue.References),
	}
	if f.ID == "" {
		f.ID = findings.NewID()
	}
	if f.Title == "" {
		f.Title = "Security Issue"
	}
	if f.Description == "" {
		f.Description = "No description provided"
	}
	if f.FilePath == "" {
		f.FilePath = issue.FilePath
	}
	f.LineNumber = int(issue.LineNumber)
	f.ColumnNumber = int(issue.ColumnNumber)
	return f
}

// decodeReferences tolerates both a JSON array of strings and a single
// string value.
func decodeReferences(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var refs []string
	if err := json.Unmarshal(raw, &refs); err == nil {
		return refs
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}
