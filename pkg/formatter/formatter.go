package formatter

import (
	"strings"
)

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!', '\\':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EscapeCodeBlock escapes the two characters MarkdownV2 reserves inside pre
// and code entities.
func EscapeCodeBlock(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == '`' || r == '\\' {
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// CodeBlock wraps s in a MarkdownV2 pre block tagged with lang.
func CodeBlock(lang, s string) string {
	return "```" + lang + "\n" + EscapeCodeBlock(strings.TrimRight(s, "\n")) + "\n```"
}
