package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprscript/lang/config"
)

func TestConfiguredPluralizeOverridesDefaultRule(t *testing.T) {
	cfg := config.Default()
	cfg.Types["itemtype"] = config.TypeConfig{Plural: "always"}
	cfg.Types["player"] = config.TypeConfig{Plural: "never"}

	pluralize := configuredPluralize(cfg)

	base, plural := pluralize("itemtype")
	assert.Equal(t, "itemtype", base)
	assert.True(t, plural)

	base, plural = pluralize("players")
	assert.Equal(t, "player", base)
	assert.False(t, plural)
}

func TestConfiguredPluralizeFallsBackToDemoRule(t *testing.T) {
	cfg := config.Default()
	pluralize := configuredPluralize(cfg)

	base, plural := pluralize("players")
	assert.Equal(t, "player", base)
	assert.True(t, plural)
}

func TestConfiguredTypesPrefersConfiguredDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Types["world"] = config.TypeConfig{Default: "the_end"}

	provider, ok := configuredTypes{cfg}.DefaultFor("world")
	require.True(t, ok)
	v := provider.Init()
	assert.Equal(t, "the_end", v.String())
}

func TestConfiguredTypesFallsBackToDemoDefault(t *testing.T) {
	cfg := config.Default()

	provider, ok := configuredTypes{cfg}.DefaultFor("world")
	require.True(t, ok)
	assert.True(t, provider.IsSingle())
}

func TestConfiguredTypesUnknownType(t *testing.T) {
	cfg := config.Default()
	_, ok := configuredTypes{cfg}.DefaultFor("nonexistent")
	assert.False(t, ok)
}

func TestLoadConfigFallsBackToDefaultWhenMissing(t *testing.T) {
	old := cfgFile
	cfgFile = "/nonexistent/.exprscript.yaml"
	defer func() { cfgFile = old }()

	cfg := loadConfig()
	assert.Equal(t, "exprscript", cfg.Name)
	assert.True(t, cfg.LenientQuotes)
}
