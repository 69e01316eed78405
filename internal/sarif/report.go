// Package sarif renders analysis results as SARIF 2.1.0 reports so findings
// can flow into code-scanning dashboards and CI gates.
package sarif

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/aeyeguard/aeyeguard/internal/analyzer"
	"github.com/aeyeguard/aeyeguard/internal/findings"
)

const (
	toolName = "aeyeguard"
	toolURI  = "https://github.com/aeyeguard/aeyeguard"
)

// FromResult converts an analysis result into a SARIF report with a single
// run. Each finding becomes a rule plus a result carrying its location.
func FromResult(result *analyzer.Result, targetPath string) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	for _, f := range result.Findings {
		rule := run.AddRule(f.ID).
			WithDescription(f.Title).
			WithFullDescription(sarif.NewMultiformatMessageString(f.Description)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: toSarifLevel(f.Severity),
			})
		props := sarif.Properties{}
		if f.Remediation != "" {
			props["remediation"] = f.Remediation
		}
		if len(f.References) > 0 {
			props["references"] = f.References
		}
		if len(props) > 0 {
			rule.WithProperties(props)
		}

		uri := f.FilePath
		if uri == "" {
			uri = targetPath
		}
		region := sarif.NewRegion().WithStartLine(lineOrDefault(f.LineNumber))
		if f.ColumnNumber > 0 {
			region.WithStartColumn(f.ColumnNumber)
		}
		if f.CodeSnippet != "" {
			region.WithSnippet(sarif.NewArtifactContent().WithText(f.CodeSnippet))
		}
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri)).
				WithRegion(region),
		)

		res := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(f.Description)).
			WithLevel(toSarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(res)
	}
	report.AddRun(run)

	return report, nil
}

// Write renders the result as pretty-printed SARIF JSON.
func Write(result *analyzer.Result, targetPath string, w io.Writer) error {
	report, err := FromResult(result, targetPath)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}

func toSarifLevel(severity findings.Severity) string {
	switch severity {
	case findings.SeverityCritical, findings.SeverityHigh:
		return "error"
	case findings.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

// lineOrDefault keeps zero/unknown line numbers valid: SARIF regions are
// 1-based.
func lineOrDefault(line int) int {
	if line < 1 {
		return 1
	}
	return line
}
