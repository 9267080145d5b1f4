// Package views turns attribute records into the list and detail views.
// Every function here is pure; the HTML they return has all interpolated
// text escaped with Escape.
package views

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the characters that are significant in HTML text and
// attribute values with their entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
