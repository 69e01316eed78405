// Package preprocess removes comments from source text ahead of analysis.
// The output always has the same number of lines as the input: downstream
// findings carry absolute line numbers, so stripping may blank lines but
// never delete them.
package preprocess

import (
	"strings"

	"github.com/aeyeguard/aeyeguard/internal/language"
)

// Result is the outcome of comment stripping.
type Result struct {
	Code string
	// Degraded is set when the scanner hit an unterminated block comment and
	// blanked the remainder of the input instead of failing.
	Degraded bool
}

// scanner states. String states exist so comment markers inside literals are
// left untouched.
type state int

const (
	stNormal state = iota
	stLineComment
	stBlockComment
	stSingleQuote
	stDoubleQuote
	stTemplate
)

// StripComments removes comments from code while preserving line numbering.
// Comment-only lines become empty lines; lines spanned by a block comment
// become empty through the end of the comment. `//` and `/* */` are handled
// for every supported language; `#` line comments are additionally honoured
// when the language is unknown. The function is total: malformed input
// degrades permissively, it never fails.
func StripComments(lang language.Language, code string) Result {
	hashComments := lang == language.Unknown

	var out strings.Builder
	out.Grow(len(code))

	var line strings.Builder
	lineStripped := false

	st := stNormal
	escaped := false

	flushLine := func() {
		text := line.String()
		if lineStripped {
			// Drop whitespace left behind where a comment was removed so
			// comment-only lines come out truly empty. Untouched lines are
			// written verbatim; a template literal may legally carry
			// trailing spaces.
			text = strings.TrimRight(text, " \t\r")
		}
		out.WriteString(text)
		line.Reset()
		lineStripped = false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]

		if c == '\n' {
			// Line comments end at the newline; single- and double-quoted
			// strings do not legally span lines, so reset to normal rather
			// than let a stray quote eat the rest of the file.
			switch st {
			case stLineComment, stSingleQuote, stDoubleQuote:
				st = stNormal
			case stBlockComment:
				lineStripped = true
			}
			escaped = false
			flushLine()
			out.WriteByte('\n')
			continue
		}

		switch st {
		case stNormal:
			switch {
			case c == '/' && i+1 < len(code) && code[i+1] == '/':
				st = stLineComment
				lineStripped = true
				i++
			case c == '/' && i+1 < len(code) && code[i+1] == '*':
				st = stBlockComment
				lineStripped = true
				i++
			case c == '#' && hashComments:
				st = stLineComment
				lineStripped = true
			case c == '\'':
				st = stSingleQuote
				line.WriteByte(c)
			case c == '"':
				st = stDoubleQuote
				line.WriteByte(c)
			case c == '`':
				st = stTemplate
				line.WriteByte(c)
			default:
				line.WriteByte(c)
			}

		case stLineComment, stBlockComment:
			if st == stBlockComment && c == '*' && i+1 < len(code) && code[i+1] == '/' {
				st = stNormal
				i++
			}

		case stSingleQuote, stDoubleQuote, stTemplate:
			line.WriteByte(c)
			if escaped {
				escaped = false
				break
			}
			switch {
			case c == '\\':
				escaped = true
			case c == '\'' && st == stSingleQuote,
				c == '"' && st == stDoubleQuote,
				c == '`' && st == stTemplate:
				st = stNormal
			}
		}
	}
	if st == stBlockComment {
		lineStripped = true
	}
	flushLine()

	return Result{
		Code:     out.String(),
		Degraded: st == stBlockComment,
	}
}

// LineCount returns the number of lines in text the way the stripper counts
// them: one more than the number of newline characters.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
