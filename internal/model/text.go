package model

import (
	"cmp"
	"regexp"
	"strings"
)

// Ellipsis is appended to shortened text
const Ellipsis = "..."

var htmlTagPattern = regexp.MustCompile(`(?i)<([^>]+)>`)

// ShortenText cuts text at the first space at or after length runes and appends
// an ellipsis. Text without a later space is returned unchanged so words are
// never split.
func ShortenText(text string, length int) string {
	runes := []rune(text)
	if length < 0 || len(runes) <= length {
		return text
	}

	tail := string(runes[length:])
	idx := strings.IndexRune(tail, ' ')
	if idx == -1 {
		return text
	}

	return string(runes[:length]) + tail[:idx] + Ellipsis
}

// FormatDescription strips HTML markup from API descriptions. A positive length
// additionally shortens the result with ShortenText.
func FormatDescription(text string, length int) string {
	formatted := htmlTagPattern.ReplaceAllString(text, "")
	if length <= 0 {
		return formatted
	}
	return ShortenText(formatted, length)
}

// Clamp limits v to the closed range [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// CleanText collapses control whitespace that breaks single-line labels
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
