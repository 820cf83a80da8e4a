package telegram

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes user-provided text for Telegram HTML parse mode.
// Only the characters Telegram treats as markup need escaping.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
