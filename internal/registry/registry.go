// Package registry describes the host collaborators the parser consumes:
// registries of expression, variable, and event definitions, the literal
// type registry, and default-value providers. Only interfaces live here —
// concrete expression/event classes and their later-evaluation semantics
// are out of scope.
package registry

import (
	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/pattern"
)

// ExpressionFactory constructs a fresh, uninitialized expression instance
// for one registered definition. Definitions are registered eagerly and
// dispatched through a table rather than reflection.
type ExpressionFactory func() Instance

// Log is the diagnostic surface handed to Init so a candidate can record a
// warning or, on rejection, an error explaining why it rejected the match.
// internal/diag.Sink satisfies this.
type Log interface {
	Warning(msg string)
	Error(msg string)
}

// Instance is what every candidate expression (and variable) built by a
// factory must support once matched. It embeds expr.Expr so a successfully
// constructed candidate is itself usable as the bound value of an outer
// placeholder (nested expression parsing).
type Instance interface {
	expr.Expr
	// Init binds the matched placeholders, remembers which pattern index
	// matched, and receives the matched input text; the rest of the match
	// result (regex matches, matched-character count) is not passed.
	// Returning false rejects the
	// candidate; whether it logged an error on log decides whether the
	// rejection is silent or surfaces as a SEMANTIC_ERROR.
	Init(bindings []expr.Expr, patternIndex int, matchedInput string, log Log) bool
}

// ExpressionDef is one registered expression definition: an ordered list
// of patterns (tried in declared order) and a factory, as advertised by
// extension authors.
type ExpressionDef struct {
	ID       string
	Patterns []string
	New      ExpressionFactory
}

// EventInstance is the event-header equivalent of Instance: its Init
// receives literal-typed bindings only (parseStatic disables nested
// variable parsing for event headers).
type EventInstance interface {
	Init(bindings []expr.Expr, patternIndex int, matchedInput string, log Log) bool
}

// EventDef is the event-header equivalent of ExpressionDef.
type EventDef struct {
	ID       string
	Patterns []string
	New      func() EventInstance
}

// DefaultProvider supplies the implicit value for a placeholder left
// unbound by a successful match. Init constructs the concrete default
// value; the rest mirror expr.Expr so the candidate driver can apply the
// same plurality/tense checks it applies to any other binding.
type DefaultProvider interface {
	Init() expr.Expr
	IsSingle() bool
	SetTime(t int) bool
}

// TypeRegistry supplies the registered default provider for a
// placeholder's declared type name, if any. It has no type lookup of its
// own; typed conversion goes through LiteralTypes, keyed by type name.
type TypeRegistry interface {
	DefaultFor(typeName string) (DefaultProvider, bool)
}

// Pluralize resolves a placeholder base name into (singular form,
// plural?), per the host's pluralization rule. Aliased to pattern.Pluralizer
// so a registry's rule can be handed directly to the match engine.
type Pluralize = pattern.Pluralizer

// Source iterates registered definitions in registration order, as
// consumed by the candidate driver.
type Source interface {
	Expressions() []ExpressionDef
	Variables() []ExpressionDef
	Events() []EventDef
}

// LiteralTypes converts a literal's parts into a typed expr.Expr for a
// given type name, and names the universal type via Universal (for that
// type the resolver returns the unparsed literal as-is, without Convert).
type LiteralTypes interface {
	Universal() string
	Convert(typeName string, parts []string, isAnd bool) (expr.Expr, bool)
}
