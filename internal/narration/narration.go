// Package narration cleans free-text narration fields from bank statement
// exports.
package narration

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean normalizes a narration string: whitespace runs collapse to a single
// space, the statement-format separators '/' and '-' become spaces, and the
// result is trimmed. Empty input yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "/", " ")
	text = strings.ReplaceAll(text, "-", " ")

	return strings.TrimSpace(text)
}
