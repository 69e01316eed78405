package serve

import (
	"github.com/spf13/cobra"

	"github.com/aeyeguard/aeyeguard/cmd/version"
	"github.com/aeyeguard/aeyeguard/internal/analyzer"
	"github.com/aeyeguard/aeyeguard/internal/llm"
	"github.com/aeyeguard/aeyeguard/internal/server"
	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
	"github.com/aeyeguard/aeyeguard/pkg/shared/httpclient"
	"github.com/aeyeguard/aeyeguard/pkg/shared/logger"
)

var AppConfig *config.Config

// ServeCmd runs the HTTP service.
var ServeCmd = &cobra.Command{
	Use:                   "serve",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "Run the security analysis HTTP service",
	RunE:                  runServeCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-serve")

	httpc := httpclient.InitializeRestyClient(log.Named("llm"), AppConfig)
	client := llm.New(httpc, AppConfig.LLM.BaseURL, AppConfig.LLM.Model, AppConfig.LLM.APIKey)
	service := analyzer.New(client, log.Named("analyzer"))

	srv := server.New(AppConfig, log, service, client, server.VersionInfo{
		Service: "aeyeguard",
		Version: version.Current().Version,
	})

	log.Info("service configured", "endpoint", AppConfig.LLM.BaseURL, "model", AppConfig.LLM.Model)
	return srv.Run()
}
