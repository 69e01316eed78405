package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aeyeguard/aeyeguard/cmd/analyse"
	"github.com/aeyeguard/aeyeguard/cmd/languages"
	"github.com/aeyeguard/aeyeguard/cmd/serve"
	"github.com/aeyeguard/aeyeguard/cmd/version"
	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "aeyeguard [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "AeyeGuard performs LLM-assisted security analysis of source code.",
		Long: `AeyeGuard routes source-code snippets to a local LLM endpoint for security
	analysis and structures the model's answer into typed findings.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(analyse.AnalyseCmd)
	rootCmd.AddCommand(languages.LanguagesCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	var err error

	// Environment variables may come from a local .env file, matching how
	// the model runtime is usually configured during development.
	_ = godotenv.Load()

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	serve.Init(AppConfig)
	analyse.Init(AppConfig)
	languages.Init(AppConfig)
}
