package catalog

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Whitespace, hyphen, underscore and slash are interchangeable separators
// when matching category and brand text. Segment boundaries additionally
// accept ">" because stored category text may be a breadcrumb path
// ("Women > Shoes").
const (
	sepClass      = `[\s\-_/]+`
	boundaryClass = `[\s\-_/>]`
)

var sepSplit = regexp.MustCompile(sepClass)

// Pattern is a case-insensitive match expression ready to be sent to the
// store as $regex. The expression text is always built from QuoteMeta'd
// tokens, never from raw input.
type Pattern struct {
	Expr    string
	Options string
}

// Key identifies a pattern for deduplication.
func (p Pattern) Key() string { return p.Expr + "\x00" + p.Options }

func (p Pattern) Regex() bson.Regex {
	return bson.Regex{Pattern: p.Expr, Options: p.Options}
}

func escapedTokens(raw string) []string {
	parts := sepSplit.Split(strings.TrimSpace(raw), -1)
	toks := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		toks = append(toks, regexp.QuoteMeta(part))
	}
	return toks
}

// Strict matches an entire field value, tolerating case and separator drift:
// "womens-shoes" matches "Womens Shoes", "womens_shoes", "womens/shoes".
// Empty or whitespace-only input yields no pattern.
func Strict(raw string) (Pattern, bool) {
	toks := escapedTokens(raw)
	if len(toks) == 0 {
		return Pattern{}, false
	}
	return Pattern{Expr: "^" + strings.Join(toks, sepClass) + "$", Options: "i"}, true
}

// Segment matches the value as a boundary-delimited unit inside a larger
// string: "Shoes" inside "Women > Shoes" but not inside "Horseshoes".
func Segment(raw string) (Pattern, bool) {
	toks := escapedTokens(raw)
	if len(toks) == 0 {
		return Pattern{}, false
	}
	expr := "(^|" + boundaryClass + ")" + strings.Join(toks, sepClass) + "(" + boundaryClass + "|$)"
	return Pattern{Expr: expr, Options: "i"}, true
}

// Substring matches raw anywhere in the field, case-insensitively. Used for
// free-text search; no separator tolerance, no tokenization.
func Substring(raw string) (Pattern, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Pattern{}, false
	}
	return Pattern{Expr: regexp.QuoteMeta(raw), Options: "i"}, true
}
