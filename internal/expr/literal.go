// Package expr provides the literal-value side of the Expr surface that
// internal/matcher and internal/resolve operate against: an UnparsedLiteral
// and its typed conversions.
package expr

import "fmt"

// Expr is the value surface every binding satisfies. internal/matcher
// re-exports it as matcher.Expr (a type alias), so this package has no
// dependency on internal/matcher.
type Expr interface {
	IsSingle() bool
	SetTime(t int) bool
	GetConverted(typeName string) (Expr, bool)
	String() string
}

// Converter is a host-registered function turning an UnparsedLiteral's
// parts into a typed value for one declared type name. internal/resolve
// builds one per conversion by binding registry.LiteralTypes.Convert to
// the declared type name.
type Converter func(parts []string, isAnd bool) (Expr, bool)

// UnparsedLiteral is a leaf value: an ordered list of trimmed strings and
// a conjunction/disjunction flag, pending conversion to a typed literal
// before any registered literal type has claimed it.
type UnparsedLiteral struct {
	Parts []string
	IsAnd bool
}

func (u *UnparsedLiteral) IsSingle() bool { return len(u.Parts) <= 1 }

// SetTime is meaningless for an unconverted literal; it has no past/future
// state to shift to.
func (u *UnparsedLiteral) SetTime(t int) bool { return t == 0 }

// GetConverted is a no-op: an UnparsedLiteral carries no registry
// reference of its own, so type conversion goes through Convert instead.
// It exists only so UnparsedLiteral satisfies Expr when returned as-is for
// the universal type (resolve.Resolve special-cases that before ever
// calling this).
func (u *UnparsedLiteral) GetConverted(typeName string) (Expr, bool) { return nil, false }

// Convert runs convert over this literal's parts and wraps the result.
func (u *UnparsedLiteral) Convert(convert Converter) (Expr, bool) {
	return convert(u.Parts, u.IsAnd)
}

func (u *UnparsedLiteral) String() string {
	if len(u.Parts) == 0 {
		return ""
	}
	sep := " or "
	if u.IsAnd {
		sep = " and "
	}
	s := u.Parts[0]
	for _, p := range u.Parts[1:] {
		s += sep + p
	}
	return fmt.Sprintf("%q", s)
}

// Literal wraps a single converted value of a declared type. Demo types and
// default providers build these; see internal/demo.
type Literal struct {
	TypeName string
	Value    any
	Single   bool
	Render   func(any) string
	// ConvertTo, when non-nil, is consulted by GetConverted for cross-type
	// conversion (e.g. a world literal converting to the universal type).
	ConvertTo func(typeName string) (Expr, bool)
}

func (l *Literal) IsSingle() bool      { return l.Single }
func (l *Literal) SetTime(t int) bool  { return t == 0 }
func (l *Literal) GetConverted(typeName string) (Expr, bool) {
	if typeName == l.TypeName {
		return l, true
	}
	if l.ConvertTo != nil {
		return l.ConvertTo(typeName)
	}
	return nil, false
}
func (l *Literal) String() string {
	if l.Render != nil {
		return l.Render(l.Value)
	}
	return fmt.Sprintf("%v", l.Value)
}
