package languages

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aeyeguard/aeyeguard/internal/language"
	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
)

var AppConfig *config.Config

// LanguagesCmd lists the supported languages and their metadata.
var LanguagesCmd = &cobra.Command{
	Use:                   "languages",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "List supported languages and their file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported languages:")
		for _, lang := range language.Supported {
			fmt.Printf("  %-18s %-18s extensions: %s\n", lang, lang.DisplayName(), strings.Join(lang.Extensions(), ", "))
		}
	},
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}
