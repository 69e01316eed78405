package language

import (
	"regexp"
	"strings"
)

// extensionMap is an ordered association list so that the longer ".tsx"/".jsx"
// suffixes are checked before ".ts"/".js".
var extensionMap = []struct {
	ext  string
	lang Language
}{
	{".cs", CSharp},
	{".tsx", ReactTypeScript},
	{".ts", ReactTypeScript},
	{".jsx", ReactJavaScript},
	{".js", ReactJavaScript},
	{".java", Java},
}

// signaturePatterns holds per-language textual signatures for content-based
// detection. A language's score is the number of matching signatures.
var signaturePatterns = map[Language][]*regexp.Regexp{
	CSharp: {
		regexp.MustCompile(`\busing\s+System\b`),
		regexp.MustCompile(`\bnamespace\s+\w+`),
		regexp.MustCompile(`\bpublic\s+class\s+\w+`),
		regexp.MustCompile(`\bprivate\s+\w+\s+\w+\s*\{`),
		regexp.MustCompile(`\[assembly:\s*\w+\]`),
	},
	ReactTypeScript: {
		regexp.MustCompile(`\bimport\s+.*\s+from\s+['"]react['"]`),
		regexp.MustCompile(`\bexport\s+.*React\.FC`),
		regexp.MustCompile(`\binterface\s+\w+Props`),
		regexp.MustCompile(`:\s*React\.ReactNode`),
		regexp.MustCompile(`:\s*(string|number|boolean)\b`),
	},
	ReactJavaScript: {
		regexp.MustCompile(`\bimport\s+.*\s+from\s+['"]react['"]`),
		regexp.MustCompile(`\bexport\s+default\s+function`),
		regexp.MustCompile(`\bReact\.createElement`),
		regexp.MustCompile(`<\w+[^>]*>.*</\w+>`),
	},
	Java: {
		regexp.MustCompile(`\bpackage\s+[a-z][a-z0-9_.]*\s*;`),
		regexp.MustCompile(`\bimport\s+(java|javax|org)\.`),
		regexp.MustCompile(`\bpublic\s+(class|interface|enum)\s+\w+`),
		regexp.MustCompile(`@(Override|Autowired|Entity|Controller|Service|Repository)`),
		regexp.MustCompile(`\b(public|private|protected)\s+(static\s+)?(void|int|String|boolean)\s+\w+\s*\(`),
	},
}

// Detect resolves a Language for a request together with the method used.
// Precedence: an explicit hint that names a supported language wins outright,
// then the file extension table, then content signatures. Anything that falls
// through resolves to Unknown; Detect never fails.
func Detect(hint, filePath, code string) (Language, Method) {
	if hint != "" && hint != "auto" {
		if lang := Parse(hint); lang != Unknown {
			return lang, MethodExplicit
		}
	}

	if filePath != "" {
		if lang := detectByExtension(filePath); lang != Unknown {
			return lang, MethodExtension
		}
	}

	if lang := detectByPatterns(code); lang != Unknown {
		return lang, MethodPattern
	}

	return Unknown, MethodUnmatched
}

func detectByExtension(filePath string) Language {
	lower := strings.ToLower(filePath)
	for _, m := range extensionMap {
		if strings.HasSuffix(lower, m.ext) {
			return m.lang
		}
	}
	return Unknown
}

// detectByPatterns scores each language by its matching signatures and picks
// the highest scorer. Ties fall to the earlier entry in Supported, so the
// result is deterministic for ambiguous input.
func detectByPatterns(code string) Language {
	best := Unknown
	bestScore := 0
	for _, lang := range Supported {
		score := 0
		for _, re := range signaturePatterns[lang] {
			if re.MatchString(code) {
				score++
			}
		}
		if score > bestScore {
			best = lang
			bestScore = score
		}
	}
	return best
}
