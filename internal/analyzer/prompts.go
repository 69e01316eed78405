package analyzer

import (
	"embed"

	"github.com/aeyeguard/aeyeguard/internal/language"
)

// The security-rules prompts are static configuration data, one file per
// supported language.
//
//go:embed prompts/*.txt
var promptFS embed.FS

var promptFiles = map[language.Language]string{
	language.CSharp:          "prompts/csharp.txt",
	language.ReactTypeScript: "prompts/react_typescript.txt",
	language.ReactJavaScript: "prompts/react_javascript.txt",
	language.Java:            "prompts/java.txt",
}

// rulesPrompt returns the security-rules prompt for a supported language.
func rulesPrompt(lang language.Language) (string, bool) {
	name, ok := promptFiles[lang]
	if !ok {
		return "", false
	}
	data, err := promptFS.ReadFile(name)
	if err != nil {
		// The prompt files are embedded at build time; a missing one is a
		// packaging defect equivalent to an unsupported language.
		return "", false
	}
	return string(data), true
}
