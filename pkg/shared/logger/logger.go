package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
)

// NewLogger creates an hclog.Logger based on the YAML configuration and the
// provided name. The AEYEGUARD_LOG_LEVEL environment variable takes
// precedence over the config file.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      os.Stdout,
		Level:       determineLogLevel(cfg),
	})

	return logger
}

func determineLogLevel(cfg *config.Config) hclog.Level {
	if logLevelEnv := os.Getenv("AEYEGUARD_LOG_LEVEL"); logLevelEnv != "" {
		return parseLogLevel(strings.ToUpper(logLevelEnv))
	}
	if cfg != nil {
		return parseLogLevel(strings.ToUpper(cfg.Logger.Level))
	}
	return hclog.Info
}

func parseLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}
