package html

import "strings"

var escaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"&", "&amp;",
)

// Escape replaces <, >, " and & with their named entities. Everything else is passed
// through unchanged.
func Escape(s string) string {
	if strings.IndexAny(s, `<>"&`) == -1 {
		return s
	}

	return escaper.Replace(s)
}
