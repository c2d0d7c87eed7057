package cmd

import (
	"errors"
	"os"

	"github.com/exprscript/lang/config"
	"github.com/exprscript/lang/internal/candidate"
	"github.com/exprscript/lang/internal/demo"
	"github.com/exprscript/lang/internal/expr"
	"github.com/exprscript/lang/internal/pattern"
	"github.com/exprscript/lang/internal/registry"
)

// loadConfig reads cfgFile, falling back to config.Default() when the file
// does not exist: the demo registry works out of the box without a
// `.exprscript.yaml` present, but honors one when it finds it.
func loadConfig() *config.Config {
	c, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default()
		}
		exitOnError(err)
	}
	return c
}

// newDriver builds the candidate.Driver the CLI commands parse against,
// layering cfg's registered type defaults and pluralization overrides on
// top of the demo registry and threading cfg.LenientQuotes through to the
// matcher and literal splitter.
func newDriver(cfg *config.Config) *candidate.Driver {
	return candidate.New(demo.Registry{}, demo.Literals{}, configuredTypes{cfg}, configuredPluralize(cfg), cfg.LenientQuotes)
}

// configuredPluralize layers cfg's per-type "always"/"never" plurality
// overrides on top of demo.Pluralize's trailing-"s" rule.
func configuredPluralize(cfg *config.Config) pattern.Pluralizer {
	return func(name string) (string, bool) {
		base, plural := demo.Pluralize(name)
		if tc, ok := cfg.Types[base]; ok {
			switch tc.Plural {
			case "always":
				return base, true
			case "never":
				return base, false
			}
		}
		return base, plural
	}
}

// configuredTypes layers cfg's registered per-type default literals on top
// of demo.Types's built-in "world" default.
type configuredTypes struct {
	cfg *config.Config
}

func (t configuredTypes) DefaultFor(typeName string) (registry.DefaultProvider, bool) {
	if tc, ok := t.cfg.Types[typeName]; ok && tc.Default != "" {
		return configDefault{typeName: typeName, text: tc.Default}, true
	}
	return demo.Types{}.DefaultFor(typeName)
}

// configDefault resolves a config-registered default to a plain literal,
// always single and tenseless.
type configDefault struct {
	typeName string
	text     string
}

func (d configDefault) Init() expr.Expr {
	return &expr.Literal{TypeName: d.typeName, Value: d.text, Single: true}
}
func (configDefault) IsSingle() bool     { return true }
func (configDefault) SetTime(t int) bool { return t == 0 }
