// Package demo is a small, self-contained registry the command-line tools
// parse against: a handful of near-English expression definitions (world,
// item, player, entity type) that a real host application would register
// dozens or hundreds of.
package demo

import (
	"regexp"
	"strings"

	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/registry"
)

// Pluralize is the demo registry's placeholder-name rule: a trailing "s"
// on a multi-character base name marks it plural.
func Pluralize(name string) (base string, plural bool) {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return strings.TrimSuffix(name, "s"), true
	}
	return name, false
}

// Literals is the demo registry's leaf-level type conversion table.
type Literals struct{}

func (Literals) Universal() string { return "object" }

var quotedWorld = regexp.MustCompile(`(?i)^world\s+"(.+)"$`)

// validEntityTypes stands in for the host's real entity-type registry, so
// the demo registry can reproduce the worked "not a known entity type"
// scenario for an unrecognized name.
var validEntityTypes = map[string]bool{
	"zombie": true, "skeleton": true, "creeper": true, "spider": true,
}

func (Literals) Convert(typeName string, parts []string, isAnd bool) (expr.Expr, bool) {
	if len(parts) != 1 {
		return nil, false
	}
	part := strings.TrimSpace(parts[0])
	switch typeName {
	case "world":
		name := part
		if m := quotedWorld.FindStringSubmatch(part); m != nil {
			name = m[1]
		}
		return &expr.Literal{TypeName: "world", Value: name, Single: true}, true
	case "entitytype":
		if !validEntityTypes[strings.ToLower(part)] {
			return nil, false
		}
		return &expr.Literal{TypeName: typeName, Value: part, Single: true}, true
	case "player", "itemtype", "item":
		return &expr.Literal{TypeName: typeName, Value: part, Single: true}, true
	default:
		return nil, false
	}
}

// Types is the demo registry's default-value table. Only "world" has one,
// mirroring the scenario where the calling context is already located in
// a world and an absent [of %world%] clause falls back to it.
type Types struct {
	CurrentWorld string
}

func (t Types) DefaultFor(typeName string) (registry.DefaultProvider, bool) {
	if typeName != "world" {
		return nil, false
	}
	return worldDefault{name: t.CurrentWorld}, true
}

type worldDefault struct{ name string }

func (w worldDefault) Init() expr.Expr {
	return &expr.Literal{TypeName: "world", Value: w.name, Single: true}
}
func (worldDefault) IsSingle() bool     { return true }
func (worldDefault) SetTime(t int) bool { return t == 0 }

// Registry bundles the demo expression definitions into a registry.Source.
type Registry struct{}

func (Registry) Expressions() []registry.ExpressionDef {
	return []registry.ExpressionDef{
		{
			ID:       "world",
			Patterns: []string{"[the] world [of %world%]"},
			New:      func() registry.Instance { return &worldExpr{} },
		},
		{
			ID:       "give",
			Patterns: []string{"give %itemtype% to %player%"},
			New:      func() registry.Instance { return &giveExpr{} },
		},
		{
			ID:       "give-verb",
			Patterns: []string{"%player% (gives|gave) %item% to %player%"},
			New:      func() registry.Instance { return &giveVerbExpr{} },
		},
		{
			ID:       "spawn",
			Patterns: []string{"spawn %entitytype%"},
			New:      func() registry.Instance { return &spawnExpr{} },
		},
	}
}

// Variables is empty: the demo registry has no expression types meant to
// be resolved only as a nested %placeholder%, so every placeholder falls
// through to the leaf-level literal conversion in Literals.
func (Registry) Variables() []registry.ExpressionDef { return nil }

func (Registry) Events() []registry.EventDef { return nil }

func literalValue(v expr.Expr) string {
	l, ok := v.(*expr.Literal)
	if !ok {
		return v.String()
	}
	s, _ := l.Value.(string)
	return s
}

type worldExpr struct{ World string }

func (e *worldExpr) IsSingle() bool                             { return true }
func (e *worldExpr) SetTime(t int) bool                         { return t == 0 }
func (e *worldExpr) GetConverted(typeName string) (expr.Expr, bool) {
	if typeName == "world" {
		return &expr.Literal{TypeName: "world", Value: e.World, Single: true}, true
	}
	return nil, false
}
func (e *worldExpr) String() string { return "world of " + e.World }

func (e *worldExpr) Init(bindings []expr.Expr, patternIndex int, matchedInput string, log registry.Log) bool {
	e.World = literalValue(bindings[0])
	return true
}

type giveExpr struct{ Item, Player string }

func (e *giveExpr) IsSingle() bool                             { return true }
func (e *giveExpr) SetTime(t int) bool                         { return t == 0 }
func (e *giveExpr) GetConverted(typeName string) (expr.Expr, bool) { return nil, false }
func (e *giveExpr) String() string                             { return "give " + e.Item + " to " + e.Player }

func (e *giveExpr) Init(bindings []expr.Expr, patternIndex int, matchedInput string, log registry.Log) bool {
	e.Item = literalValue(bindings[0])
	e.Player = literalValue(bindings[1])
	return true
}

type giveVerbExpr struct {
	Giver, Item, Receiver string
}

func (e *giveVerbExpr) IsSingle() bool                             { return true }
func (e *giveVerbExpr) SetTime(t int) bool                         { return t == 0 }
func (e *giveVerbExpr) GetConverted(typeName string) (expr.Expr, bool) { return nil, false }
func (e *giveVerbExpr) String() string {
	return e.Giver + " gives " + e.Item + " to " + e.Receiver
}

func (e *giveVerbExpr) Init(bindings []expr.Expr, patternIndex int, matchedInput string, log registry.Log) bool {
	e.Giver = literalValue(bindings[0])
	e.Item = literalValue(bindings[1])
	e.Receiver = literalValue(bindings[2])
	return true
}

type spawnExpr struct{ EntityType string }

func (e *spawnExpr) IsSingle() bool                             { return true }
func (e *spawnExpr) SetTime(t int) bool                         { return t == 0 }
func (e *spawnExpr) GetConverted(typeName string) (expr.Expr, bool) { return nil, false }
func (e *spawnExpr) String() string                             { return "spawn " + e.EntityType }

func (e *spawnExpr) Init(bindings []expr.Expr, patternIndex int, matchedInput string, log registry.Log) bool {
	e.EntityType = literalValue(bindings[0])
	return true
}
