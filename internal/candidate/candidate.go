// Package candidate implements the search that ties the pattern matcher,
// the placeholder resolver, and a host's registries together: given an
// input span and an ordered list of definitions, try each definition's
// patterns in declared order and return the first one whose candidate
// accepts the match.
package candidate

import (
	"errors"
	"fmt"

	"github.com/exprscript/lang/internal/diag"
	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/literal"
	"github.com/exprscript/lang/internal/matcher"
	"github.com/exprscript/lang/internal/pattern"
	"github.com/exprscript/lang/internal/rank"
	"github.com/exprscript/lang/internal/registry"
	"github.com/exprscript/lang/internal/resolve"
)

// APIMisuseError reports a pattern/registry mismatch that only the
// extension author can fix: a placeholder a taken branch left unbound has
// no registered default, or the registered default's plurality or tense
// is incompatible with the placeholder's declaration. It aborts the whole
// search immediately rather than being ranked alongside user-input errors.
type APIMisuseError struct {
	TypeName string
	Reason   string
}

func (e *APIMisuseError) Error() string {
	return fmt.Sprintf("default value for type %q: %s", e.TypeName, e.Reason)
}

// EventMatch pairs a matched event definition with the instance its
// factory built and initialized, mirroring how a parsed command result
// pairs a command's info with its bound arguments.
type EventMatch struct {
	Def   registry.EventDef
	Event registry.EventInstance
}

// Driver runs the candidate search over one host's registries.
type Driver struct {
	source     registry.Source
	literals   registry.LiteralTypes
	types      registry.TypeRegistry
	pluralize  pattern.Pluralizer
	quoteAware bool
}

// New builds a Driver over source's registered definitions. literals and
// types back, respectively, leaf-level literal conversion and default-value
// lookup; pluralize is the host's placeholder-name pluralization rule.
// quoteAware mirrors config.Config.LenientQuotes and is threaded through
// every placeholder span and list-separator search this Driver runs.
func New(source registry.Source, literals registry.LiteralTypes, types registry.TypeRegistry, pluralize pattern.Pluralizer, quoteAware bool) *Driver {
	return &Driver{source: source, literals: literals, types: types, pluralize: pluralize, quoteAware: quoteAware}
}

// ParseExpression parses input against candidates, in declared order,
// logging into sink whatever the winning (or best-ranked failing) attempt
// produced. If nothing matches structurally and allowLiteralFallback is
// set, input is returned whole as an UnparsedLiteral instead of failing;
// otherwise the search reports defaultError (or the best-ranked diagnostic
// it found, whichever is more specific).
func (d *Driver) ParseExpression(input string, candidates []registry.ExpressionDef, allowLiteralFallback bool, defaultError string, sink *diag.Sink) (expr.Expr, error) {
	best := &rank.Best{}
	v, err := d.driveExprDefs(input, false, candidates, best, sink)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	if allowLiteralFallback {
		return literal.Split(input, sink, d.quoteAware), nil
	}
	return nil, d.reportFailure(best, sink, defaultError)
}

// ParseEvent parses input against every registered event-header
// definition. Event headers are statically resolvable: placeholders never
// trigger nested variable parsing, only the leaf-level literal fallback.
func (d *Driver) ParseEvent(input string, defaultError string, sink *diag.Sink) (*EventMatch, error) {
	best := &rank.Best{}
	for _, def := range d.source.Events() {
		for i, p := range def.Patterns {
			sub := sink.StartSub()
			resolver := resolve.New(d.driveVariables, d.literals, sub, d.quoteAware)
			ctx := matcher.New(input, true, resolver, best, d.pluralize, d.quoteAware)
			res, err := ctx.Match(p)
			if err != nil {
				return nil, err
			}
			if res == nil {
				if best.Quality == rank.SemanticError {
					return nil, d.reportFailure(best, sink, defaultError)
				}
				continue
			}
			bindings, err := d.fillDefaults(p, res)
			if err != nil {
				return nil, err
			}
			inst := def.New()
			if !inst.Init(bindings, i, res.Input, sub) {
				if sub.HasErrors() {
					best.Record(rank.SemanticError, sub.GetLastError())
					sub.PrintLog()
					return nil, d.reportFailure(best, sink, defaultError)
				}
				continue
			}
			sub.PrintLog()
			return &EventMatch{Def: def, Event: inst}, nil
		}
	}
	return nil, d.reportFailure(best, sink, defaultError)
}

// ParseLiteral splits input into a conjunction-aware list of parts without
// attempting any expression or variable resolution, reporting any
// malformed-list warnings (missing or mixed conjunctions) straight to sink.
func (d *Driver) ParseLiteral(input string, sink *diag.Sink) *expr.UnparsedLiteral {
	return literal.Split(input, sink, d.quoteAware)
}

// driveVariables is the resolve.DriveVariables callback: a nested parse of
// a placeholder's span runs this same search restricted to the variables
// registry.
func (d *Driver) driveVariables(span string, best *rank.Best, sink *diag.Sink) (expr.Expr, bool) {
	v, err := d.driveExprDefs(span, false, d.source.Variables(), best, sink)
	if err != nil {
		best.Record(rank.SemanticError, err.Error())
		return nil, false
	}
	return v, v != nil
}

// driveExprDefs is the shared loop behind ParseExpression and
// driveVariables: defs are tried in order, each of their patterns in
// order, until one produces an accepted candidate or the search is
// aborted outright by a semantic error or an author bug.
func (d *Driver) driveExprDefs(span string, parseStatic bool, defs []registry.ExpressionDef, best *rank.Best, sink *diag.Sink) (expr.Expr, error) {
	for _, def := range defs {
		for i, p := range def.Patterns {
			sub := sink.StartSub()
			resolver := resolve.New(d.driveVariables, d.literals, sub, d.quoteAware)
			ctx := matcher.New(span, parseStatic, resolver, best, d.pluralize, d.quoteAware)
			res, err := ctx.Match(p)
			if err != nil {
				return nil, err
			}
			if res == nil {
				if best.Quality == rank.SemanticError {
					return nil, nil
				}
				continue
			}

			bindings, err := d.fillDefaults(p, res)
			if err != nil {
				return nil, err
			}

			inst := def.New()
			if !inst.Init(bindings, i, res.Input, sub) {
				if sub.HasErrors() {
					best.Record(rank.SemanticError, sub.GetLastError())
					sub.PrintLog()
					return nil, nil
				}
				continue
			}
			sub.PrintLog()
			return inst, nil
		}
	}
	return nil, nil
}

// fillDefaults turns a successful match's raw Slots into the bindings an
// Instance.Init call receives: bound slots pass their value through
// unchanged, and any slot a taken branch left unbound is filled from the
// type registry's default provider, enforcing the same plurality and
// tense rules a real binding would have to satisfy.
func (d *Driver) fillDefaults(p string, res *matcher.Result) ([]expr.Expr, error) {
	vars, err := pattern.EnumerateVars(p, d.pluralize)
	if err != nil {
		return nil, err
	}
	bindings := make([]expr.Expr, len(res.Bindings))
	for idx, slot := range res.Bindings {
		if slot.Bound {
			bindings[idx] = slot.Value
			continue
		}
		vi := vars[idx]
		provider, ok := d.types.DefaultFor(vi.TypeName)
		if !ok {
			return nil, &APIMisuseError{TypeName: vi.TypeName,
				Reason: "no default variable registered; register one or make the placeholder mandatory"}
		}
		if !vi.IsPlural && !provider.IsSingle() {
			return nil, &APIMisuseError{TypeName: vi.TypeName,
				Reason: "default variable is plural but the placeholder only accepts a single value"}
		}
		if vi.Time != 0 && !provider.SetTime(vi.Time) {
			return nil, &APIMisuseError{TypeName: vi.TypeName,
				Reason: "default variable does not support the requested tense"}
		}
		bindings[idx] = provider.Init()
	}
	return bindings, nil
}

// reportFailure flushes the best-ranked diagnostic seen during a failed
// search, if any, through sink.PrintErrors(defaultError). When the search
// found no diagnostic at all and the caller supplied no defaultError
// either, nothing is logged and nil is returned: a parse attempt that
// produced no ranked error and was given no fallback message reports
// nothing, by design, rather than inventing one.
func (d *Driver) reportFailure(best *rank.Best, sink *diag.Sink, defaultError string) error {
	if best.Message != "" {
		sink.Error(best.Message)
	}
	sink.PrintErrors(defaultError)
	switch {
	case best.Message != "":
		return errors.New(best.Message)
	case defaultError != "":
		return errors.New(defaultError)
	default:
		return nil
	}
}
