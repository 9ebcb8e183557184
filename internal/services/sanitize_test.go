package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCommentStripsScriptTags(t *testing.T) {
	out := SanitizeComment("<script>alert(1)</script>")
	assert.NotContains(t, out, "<script>")
	assert.Equal(t, "alert(1)", out)
}

func TestSanitizeCommentKeepsInlineFormatting(t *testing.T) {
	assert.Equal(t, "<b>bold</b> and <em>em</em>", SanitizeComment("<b>bold</b> and <em>em</em>"))
}

func TestSanitizeCommentTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", SanitizeComment("  hello  "))
	assert.Equal(t, "", SanitizeComment("   "))
}

func TestSanitizeCommentFallsBackWhenEmptied(t *testing.T) {
	// Markup-only input sanitizes to nothing; the trimmed original survives
	// instead of silently dropping the comment.
	out := SanitizeComment("<img src=x onerror=alert(1)>")
	assert.NotEmpty(t, out)
}

func TestSanitizeCommentPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "five stars, would prompt again", SanitizeComment("five stars, would prompt again"))
}
