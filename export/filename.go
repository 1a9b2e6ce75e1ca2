package export

import (
	"strings"
	"unicode"
)

// generateFilename creates a filename for a workbook using the format
// <snapshot>-<title>.xlsx where title is sanitized according to the rules:
// 1. Only alphanumeric, dash, underscore
// 2. Spaces replaced with dash
// 3. Truncated to 40 chars
// 4. If no title, "atlas" is used
func generateFilename(snapshot, title string) string {
	if title == "" {
		title = "atlas"
	}
	return snapshot + "-" + sanitizeTitle(title) + ".xlsx"
}

// sanitizeTitle makes a title safe for use in a filename
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}

	sanitized := b.String()
	if len(sanitized) > 40 {
		sanitized = sanitized[:40]
	}
	if sanitized == "" {
		sanitized = "atlas"
	}
	return sanitized
}
