package analyse

import (
	"fmt"
	"os"

	"github.com/aeyeguard/aeyeguard/internal/language"
)

// Report formats supported by the analyse command.
const (
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

// validateAnalyseArgs validates the arguments provided to the analyse
// command.
func validateAnalyseArgs(options *RunOptionsAnalyse, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one target file must be specified")
	}

	info, err := os.Stat(args[0])
	if os.IsNotExist(err) {
		return fmt.Errorf("the target path does not exist: %v", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to stat target path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("the target path is a directory, not a file: %v", args[0])
	}

	if options.Language != "" && options.Language != "auto" {
		if language.Parse(options.Language) == language.Unknown {
			return fmt.Errorf("unsupported language %q; use the languages command to list supported values", options.Language)
		}
	}

	switch options.ReportFormat {
	case "", FormatJSON, FormatSarif:
	default:
		return fmt.Errorf("unsupported report format %q; supported formats are %q and %q", options.ReportFormat, FormatJSON, FormatSarif)
	}

	return nil
}
