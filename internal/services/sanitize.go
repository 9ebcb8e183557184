package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// commentPolicy is the allow-list applied to rating comments. Basic inline
// formatting survives; every other tag is stripped. Stripped elements keep
// their text content so a comment that is pure markup still degrades to the
// text inside it instead of vanishing.
var commentPolicy = bluemonday.NewPolicy().
	AllowElements("b", "i", "em", "strong", "code", "br").
	AllowElementsContent("script", "style")

// SanitizeComment strips disallowed HTML from a rating comment. When
// sanitization leaves nothing of a non-blank input, the original trimmed text
// is kept instead of storing an empty comment.
func SanitizeComment(comment string) string {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return ""
	}
	sanitized := strings.TrimSpace(commentPolicy.Sanitize(trimmed))
	if sanitized == "" {
		return trimmed
	}
	return sanitized
}
