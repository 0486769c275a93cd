package generator

import "strings"

var sanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"`", "&#96;",
	"\n", " ",
	"\r", " ",
)

// Sanitize makes a configuration string safe to embed in HTML text or
// attribute values. It does not escape '&'.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}
