// Package literal implements the leaf-level list parser: it
// splits a string into an ordered UnparsedLiteral, picking up an and/or
// conjunction along the way.
package literal

import (
	"regexp"
	"strings"

	"github.com/exprscript/lang/internal/expr"
)

// Wildcard matches any run of text that never crosses a quoted-region
// boundary, so a separator search doesn't split inside a quoted string.
const Wildcard = `[^"]*?(?:"[^"]*?"[^"]*?)*?`

var (
	listSeparatorQuoteAware = regexp.MustCompile(`^(` + Wildcard + `)(,\s*|,?\s+and\s+|,?\s+n?or\s+)`)
	listSeparatorPlain      = regexp.MustCompile(`^(.*?)(,\s*|,?\s+and\s+|,?\s+n?or\s+)`)
)

// Sink receives warnings raised while splitting a list; internal/diag's
// Sink satisfies this.
type Sink interface {
	Warning(msg string)
}

// Split parses s into an ordered UnparsedLiteral. The first non-bare-comma
// separator fixes the conjunction; mixing "and" and "or" or never seeing
// either defaults to "and" with a warning on sink. quoteAware mirrors
// config.Config.LenientQuotes: when true, a separator search never splits
// inside a quoted span; when false, quotes are ordinary characters.
func Split(s string, sink Sink, quoteAware bool) *expr.UnparsedLiteral {
	listSeparator := listSeparatorPlain
	if quoteAware {
		listSeparator = listSeparatorQuoteAware
	}

	var parts []string
	and := true
	isAndSet := false
	mixed := false

	rest := s
	consumed := 0
	for {
		m := listSeparator.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		part := rest[m[2]:m[3]]
		sep := rest[m[4]:m[5]]

		if !isBareComma(sep) {
			isAnd := strings.Contains(sep, "and")
			if !isAndSet {
				and = isAnd
				isAndSet = true
			} else if !mixed && isAnd != and {
				sink.Warning("list has multiple 'and' or 'or', will default to 'and': " + s)
				and = true
				mixed = true
			}
		}

		parts = append(parts, strings.TrimSpace(part))
		consumed += m[1]
		rest = rest[m[1]:]
	}

	if !isAndSet && len(parts) > 0 {
		sink.Warning("list is missing 'and' or 'or', will default to 'and': " + s)
	}
	parts = append(parts, strings.TrimSpace(s[consumed:]))

	return &expr.UnparsedLiteral{Parts: parts, IsAnd: and}
}

var bareComma = regexp.MustCompile(`^,\s*$`)

func isBareComma(sep string) bool {
	return bareComma.MatchString(sep)
}
