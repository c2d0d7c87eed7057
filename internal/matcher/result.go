// Package matcher implements the recursive backtracking search over a
// single pattern against an input string.
package matcher

import (
	"regexp"

	"github.com/exprscript/lang/internal/expr"
)

// Expr is the minimal surface the matcher and resolver need from whatever
// a candidate's placeholder resolved to. The host's concrete expression
// and literal types implement this.
type Expr = expr.Expr

// Slot is a resolved placeholder binding: either a parsed sub-expression or
// literal (via Value), or unbound — legal only for optional placeholders,
// which are later filled in by a registered default.
type Slot struct {
	Value Expr
	Bound bool
}

// RegexMatch is one raw-regex slot's match result, carried in
// source-pattern order.
type RegexMatch struct {
	Pattern string
	Match   []string // as returned by regexp.Regexp.FindStringSubmatch
}

// Result is what a successful matchAt call at the top of a pattern
// produces: the input that was matched, one Slot per %...% placeholder
// (in pattern order), the regex slots matched along the way (in
// source-pattern order), and a heuristic count of literal characters
// consumed.
type Result struct {
	Input        string
	Bindings     []Slot
	Regexes      []RegexMatch
	MatchedChars int
}

// compileRegex is shared by the match engine's <...> slot handling so the
// regexp package (the correct tool for an arbitrary user-authored pattern
// compiled at parse time, see SPEC_FULL.md §11) is only ever touched here.
func compileRegex(source string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + source + ")$")
}
