// Package resolve implements nested variable resolution: given a declared
// type and an input span, try parsing it as a registered variable
// expression first, then fall back to an unparsed literal.
package resolve

import (
	"fmt"

	"github.com/exprscript/lang/internal/diag"
	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/literal"
	"github.com/exprscript/lang/internal/rank"
	"github.com/exprscript/lang/internal/registry"
)

// DriveVariables runs the full candidate search over the variables
// registry for a nested parse of span, recording into its own fresh
// best-error slot. It is supplied by internal/candidate at construction
// time so this package never imports its caller back.
type DriveVariables func(span string, best *rank.Best, sink *diag.Sink) (expr.Expr, bool)

// Resolver implements matcher.Resolver.
type Resolver struct {
	drive      DriveVariables
	literals   registry.LiteralTypes
	sink       *diag.Sink
	quoteAware bool
}

// New builds a Resolver. literals supplies the literal-type registry
// (Universal/Convert); sink receives list-parsing warnings raised while
// building the UnparsedLiteral fallback. quoteAware mirrors
// config.Config.LenientQuotes.
func New(drive DriveVariables, literals registry.LiteralTypes, sink *diag.Sink, quoteAware bool) *Resolver {
	return &Resolver{drive: drive, literals: literals, sink: sink, quoteAware: quoteAware}
}

// Resolve implements matcher.Resolver.
func (r *Resolver) Resolve(best *rank.Best, typeName, span string, staticOnly bool) (expr.Expr, bool) {
	if !staticOnly {
		inner := &rank.Best{}
		v, ok := r.drive(span, inner, r.sink)
		if ok {
			w, convOK := v.GetConverted(typeName)
			if convOK {
				return w, true
			}
			rel := "is"
			if !v.IsSingle() {
				rel = "are"
			}
			best.Record(rank.VariableOfWrongType, fmt.Sprintf("%s %s not %s", v.String(), rel, withArticle(typeName)))
			return nil, false
		}
		best.Promote(*inner)
	}

	lit := literal.Split(span, r.sink, r.quoteAware)
	if typeName == r.literals.Universal() {
		return lit, true
	}

	converted, ok := lit.Convert(func(parts []string, isAnd bool) (expr.Expr, bool) {
		return r.literals.Convert(typeName, parts, isAnd)
	})
	if ok {
		return converted, true
	}

	msg := r.sink.GetLastError()
	if msg == "" {
		msg = fmt.Sprintf("%q is not %s", span, withArticle(typeName))
	}
	best.Record(rank.NotAVariable, msg)
	return nil, false
}

func withArticle(word string) string {
	if len(word) == 0 {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + word
	default:
		return "a " + word
	}
}
