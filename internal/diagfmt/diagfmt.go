// Package diagfmt renders parser diagnostics for a terminal, the same way
// formatter/builder.go colorizes lint issues: distinct styles per
// severity, built on github.com/fatih/color.
package diagfmt

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/exprscript/lang/internal/candidate"
	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/pattern"
	"github.com/exprscript/lang/internal/rank"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	fieldStyle   = color.New(color.FgCyan)
)

// Result renders a successfully parsed expression.
func Result(v expr.Expr) string {
	return okStyle.Sprint("ok: ") + v.String()
}

// Error renders a failed parse. Malformed-pattern and API-misuse errors —
// author bugs rather than ranked user-input diagnostics — are labeled
// distinctly from an ordinary "no candidate matched" failure.
func Error(err error) string {
	switch e := err.(type) {
	case *pattern.MalformedPatternError:
		return errorStyle.Sprint("malformed pattern: ") + ruleStyle.Sprintf("%q", e.Pattern) + ": " + e.Reason
	case *candidate.APIMisuseError:
		return errorStyle.Sprint("api misuse: ") + fieldStyle.Sprintf("%s", e.TypeName) + ": " + e.Reason
	default:
		return errorStyle.Sprint("error: ") + err.Error()
	}
}

// Quality renders a ranked best-error diagnostic, colored by severity.
func Quality(q rank.Quality, message string) string {
	style := warningStyle
	if q == rank.SemanticError {
		style = errorStyle
	}
	return style.Sprintf("%s: ", q) + message
}

// Literal renders an UnparsedLiteral's parts and conjunction, as printed
// by the `literal` subcommand.
func Literal(lit *expr.UnparsedLiteral) string {
	conj := "or"
	if lit.IsAnd {
		conj = "and"
	}
	return fmt.Sprintf("%s%v %s=%s", fieldStyle.Sprint("parts="), lit.Parts, fieldStyle.Sprint("conjunction"), conj)
}
