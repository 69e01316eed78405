package analyse

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeyeguard/aeyeguard/internal/analyzer"
	"github.com/aeyeguard/aeyeguard/internal/llm"
	"github.com/aeyeguard/aeyeguard/internal/sarif"
	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
	"github.com/aeyeguard/aeyeguard/pkg/shared/httpclient"
	"github.com/aeyeguard/aeyeguard/pkg/shared/logger"
)

// RunOptionsAnalyse holds the arguments for the analyse command.
type RunOptionsAnalyse struct {
	Language     string
	ReportFormat string
	OutputPath   string
}

var (
	AppConfig           *config.Config
	analyseOptions      RunOptionsAnalyse
	exampleAnalyseUsage = `  # Analysing a single file with automatic language detection
  aeyeguard analyse /path/to/Controller.cs

  # Analysing a file with an explicit language
  aeyeguard analyse --language java /path/to/snippet.txt

  # Writing a SARIF report for CI code-scanning upload
  aeyeguard analyse --format sarif --output findings.sarif /path/to/App.tsx`
)

// AnalyseCmd runs the analysis pipeline against a local file.
var AnalyseCmd = &cobra.Command{
	Use:                   "analyse [--language/-l LANGUAGE] [--format/-f json|sarif] [--output/-o PATH] FILE",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyseUsage,
	Short:                 "Analyse a source file for security issues",
	RunE:                  runAnalyseCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runAnalyseCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-analyse")

	if err := validateAnalyseArgs(&analyseOptions, args); err != nil {
		log.Error("invalid analyse arguments", "error", err)
		return err
	}

	targetPath := args[0]
	code, err := os.ReadFile(targetPath)
	if err != nil {
		return fmt.Errorf("failed to read target file: %w", err)
	}

	httpc := httpclient.InitializeRestyClient(log.Named("llm"), AppConfig)
	client := llm.New(httpc, AppConfig.LLM.BaseURL, AppConfig.LLM.Model, AppConfig.LLM.APIKey)
	service := analyzer.New(client, log.Named("analyzer"))

	result, err := service.Analyze(context.Background(), analyzer.Request{
		Code:     string(code),
		FilePath: targetPath,
		Language: analyseOptions.Language,
	})
	if err != nil {
		log.Error("analyse command failed", "error", err)
		return err
	}

	if err := writeReport(result, targetPath, &analyseOptions); err != nil {
		log.Error("failed to write report", "error", err)
		return err
	}

	log.Info("analyse command completed successfully", "language", result.Language, "issues", len(result.Findings))
	return nil
}

// writeReport renders the result in the requested format to the output path
// or stdout.
func writeReport(result *analyzer.Result, targetPath string, opts *RunOptionsAnalyse) error {
	out := os.Stdout
	if opts.OutputPath != "" {
		file, err := os.Create(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch opts.ReportFormat {
	case FormatSarif:
		return sarif.Write(result, targetPath, out)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}

// Initialize flags for the analyse command.
func init() {
	AnalyseCmd.Flags().StringVarP(&analyseOptions.Language, "language", "l", "auto", "Language of the target file. Defaults to automatic detection.")
	AnalyseCmd.Flags().StringVarP(&analyseOptions.ReportFormat, "format", "f", FormatJSON, "Format for the report with results (json or sarif).")
	AnalyseCmd.Flags().StringVarP(&analyseOptions.OutputPath, "output", "o", "", "Path to the output file where the results will be saved. Defaults to stdout.")
	AnalyseCmd.Flags().BoolP("help", "h", false, "Show help for the analyse command.")
}
