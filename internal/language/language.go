package language

// Language identifies one of the supported analysis targets. The set is
// closed: adding a language is a deliberate, deployment-time change.
type Language string

const (
	CSharp          Language = "csharp"
	ReactTypeScript Language = "react_typescript"
	ReactJavaScript Language = "react_javascript"
	Java            Language = "java"
	Unknown         Language = "unknown"
)

// Supported lists every analyzable language in detection priority order.
// When pattern scores tie, the earlier entry wins. The order is a fixed
// policy choice: CSharp, Java, ReactTypeScript, ReactJavaScript.
var Supported = []Language{CSharp, Java, ReactTypeScript, ReactJavaScript}

// Method records how a language was resolved for a request.
type Method string

const (
	MethodExplicit  Method = "explicit"
	MethodExtension Method = "extension"
	MethodPattern   Method = "pattern"
	MethodUnmatched Method = "unmatched"
)

// Parse maps a user-supplied language name to a Language. "auto" and the
// empty string mean automatic detection and map to Unknown here.
func Parse(name string) Language {
	switch Language(name) {
	case CSharp, ReactTypeScript, ReactJavaScript, Java:
		return Language(name)
	default:
		return Unknown
	}
}

// IsSupported reports whether an analyzer exists for the language.
func (l Language) IsSupported() bool {
	for _, s := range Supported {
		if l == s {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for the language.
func (l Language) DisplayName() string {
	switch l {
	case CSharp:
		return "C#"
	case ReactTypeScript:
		return "React TypeScript"
	case ReactJavaScript:
		return "React JavaScript"
	case Java:
		return "Java"
	default:
		return "Unknown"
	}
}

// Extensions returns the file extensions mapped to the language.
func (l Language) Extensions() []string {
	var exts []string
	for _, m := range extensionMap {
		if m.lang == l {
			exts = append(exts, m.ext)
		}
	}
	return exts
}
