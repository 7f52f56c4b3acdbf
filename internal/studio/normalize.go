// Package studio turns a day's news headlines into a prompt describing an
// illustrated TV-studio panel image.
//
// The whole package is pure computation over the input titles: no I/O, no
// randomness, no state outside a single Build call. Icon assignment is the
// one order-dependent step, so titles are always processed in input order.
package studio

import "strings"

// quoteReplacer maps typographic quote characters to a straight double quote
// so downstream pattern matching sees one quote form.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // “
	"”", `"`, // ”
	"„", `"`, // „
	"‘", `"`, // ‘
	"’", `"`, // ’
	"‚", `"`, // ‚
	"«", `"`, // «
	"»", `"`, // »
	"‹", `"`, // ‹
	"›", `"`, // ›
)

// NormalizeTitle cleans a raw feed title: typographic quotes become straight
// quotes, whitespace runs collapse to single spaces, ends are trimmed.
// An empty or missing title stays an empty string; this never fails.
func NormalizeTitle(raw string) string {
	s := quoteReplacer.Replace(raw)
	return strings.Join(strings.Fields(s), " ")
}
