// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Cleans job descriptions lifted from feeds and embedded page data

package html

import (
	stdhtml "html"
	"strings"
)

// StripHTML removes markup from a string and returns cleaned plain text.
// Job boards ship descriptions as HTML fragments; the scoring rules and the
// response payload both want plain text.
func StripHTML(raw string) string {
	text := raw
	lower := strings.ToLower(text)

	// Tag removal, script/style content included. Descriptions are small
	// fragments, so a scan beats pulling in a full parser here.
	var b strings.Builder
	b.Grow(len(text))
	depth := 0
	skipUntil := ""
	for i := 0; i < len(text); i++ {
		c := text[i]
		if skipUntil != "" {
			if strings.HasPrefix(lower[i:], skipUntil) {
				i += len(skipUntil) - 1
				skipUntil = ""
				depth = 0
			}
			continue
		}
		switch {
		case c == '<':
			if strings.HasPrefix(lower[i:], "<script") {
				skipUntil = "</script>"
			} else if strings.HasPrefix(lower[i:], "<style") {
				skipUntil = "</style>"
			}
			depth++
		case c == '>':
			if depth > 0 {
				depth--
				b.WriteByte(' ')
			}
		case depth == 0:
			b.WriteByte(c)
		}
	}
	text = stdhtml.UnescapeString(b.String())

	return CollapseWhitespace(text)
}

// CollapseWhitespace trims a string and folds internal whitespace runs,
// newlines included, into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts a string to at most max bytes, appending an ellipsis when
// anything was dropped.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
