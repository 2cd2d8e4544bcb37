package rules

import "unicode/utf8"

// runeBounds converts a byte range within text into codepoint offsets.
func runeBounds(text string, b0, b1 int) (int, int) {
	start := utf8.RuneCountInString(text[:b0])
	return start, start + utf8.RuneCountInString(text[b0:b1])
}
