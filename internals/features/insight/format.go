package insight

import (
	"regexp"
	"strings"
)

var (
	strikeMarkdownRe = regexp.MustCompile(`~~(.*?)~~`)
	strikeTagRe      = regexp.MustCompile(`(?i)</?(s|del)>`)
)

// FormatContent sanitizes provider output: strikethrough markers (markdown
// and HTML) are removed while their text is kept, line endings are
// normalized to \n, and **bold** markers are left intact for rendering.
func FormatContent(content string) string {
	cleaned := strikeMarkdownRe.ReplaceAllString(content, "$1")
	cleaned = strikeTagRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	return strings.TrimSpace(cleaned)
}
