package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMatching(t *testing.T) {
	idx, err := NextMatching("[the] world", '[', ']', 1)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)

	idx, err = NextMatching("[a [b] c]", '[', ']', 1)
	require.NoError(t, err)
	assert.Equal(t, 8, idx)

	_, err = NextMatching("[unclosed", '[', ']', 1)
	require.Error(t, err)
	var mp *MalformedPatternError
	require.ErrorAs(t, err, &mp)
}

func TestNextMatchingEscapes(t *testing.T) {
	// \] inside the group must not close it.
	idx, err := NextMatching(`[a \] b]`, '[', ']', 1)
	require.NoError(t, err)
	assert.Equal(t, 7, idx)
}

func TestNextUnescaped(t *testing.T) {
	assert.Equal(t, 5, NextUnescaped("%name%", '%', 1))
	assert.Equal(t, -1, NextUnescaped("no percent here", '%', 0))
	assert.Equal(t, 3, NextUnescaped(`\%x%y`, '%', 0))
}

func TestNextUnescapedQuote(t *testing.T) {
	assert.Equal(t, 13, NextUnescapedQuote(`"hello ""x"" "`, 1))
	assert.Equal(t, -1, NextUnescapedQuote(`"unterminated`, 1))
}

func TestSplitAlternation(t *testing.T) {
	p := "(gives|gave|(will|shall) give)"
	spans := SplitAlternation(p, 1, len(p)-1)
	require.Len(t, spans, 3)
	assert.Equal(t, "gives", p[spans[0][0]:spans[0][1]])
	assert.Equal(t, "gave", p[spans[1][0]:spans[1][1]])
	assert.Equal(t, "(will|shall) give", p[spans[2][0]:spans[2][1]])
}

func TestCountPercent(t *testing.T) {
	assert.Equal(t, 0, CountPercent("give %itemtype% to %player%", 5))
	assert.Equal(t, 3, CountPercent("give %itemtype% to %player%", 20))
	assert.Equal(t, 4, CountPercent("give %itemtype% to %player%", 100))
}

func TestParseVarInfo(t *testing.T) {
	plural := func(name string) (string, bool) {
		if len(name) > 0 && name[len(name)-1] == 's' {
			return name[:len(name)-1], true
		}
		return name, false
	}

	vi, err := ParseVarInfo("player", plural)
	require.NoError(t, err)
	assert.Equal(t, VarInfo{TypeName: "player", IsPlural: false}, vi)

	vi, err = ParseVarInfo("-worlds", plural)
	require.NoError(t, err)
	assert.True(t, vi.Optional)
	assert.True(t, vi.IsPlural)
	assert.Equal(t, "world", vi.TypeName)

	vi, err = ParseVarInfo("block@-1", plural)
	require.NoError(t, err)
	assert.Equal(t, -1, vi.Time)
	assert.Equal(t, "block", vi.TypeName)

	_, err = ParseVarInfo("block@nope", plural)
	require.Error(t, err)
}

func identityPluralize(name string) (string, bool) { return name, false }

func TestEnumerateVars(t *testing.T) {
	vars, err := EnumerateVars("give %itemtype% to %player%", identityPluralize)
	require.NoError(t, err)
	require.Len(t, vars, 2)
	assert.Equal(t, "itemtype", vars[0].TypeName)
	assert.Equal(t, "player", vars[1].TypeName)
}

func TestEnumerateVarsOddPercent(t *testing.T) {
	_, err := EnumerateVars("give %itemtype to %player%", identityPluralize)
	require.Error(t, err)
}

func TestValidateAcceptsWellFormedPattern(t *testing.T) {
	require.NoError(t, Validate("[the] world [of %world%]", identityPluralize))
	require.NoError(t, Validate("%player% (gives|gave) %item% to %player%", identityPluralize))
	require.NoError(t, Validate(`go to <\d+>`, identityPluralize))
}

func TestValidateRejectsUnbalancedBracket(t *testing.T) {
	err := Validate("[the world", identityPluralize)
	require.Error(t, err)
	var mp *MalformedPatternError
	require.ErrorAs(t, err, &mp)
}

func TestValidateRejectsDanglingBackslash(t *testing.T) {
	err := Validate(`go to\`, identityPluralize)
	require.Error(t, err)
}

func TestValidateRejectsOddPercent(t *testing.T) {
	err := Validate("give %itemtype to %player%", identityPluralize)
	require.Error(t, err)
}

func TestValidateRejectsInvalidRegex(t *testing.T) {
	err := Validate("go to <(unterminated", identityPluralize)
	require.Error(t, err)
}

func TestValidateRejectsMissingRegexClose(t *testing.T) {
	err := Validate("go to <\\d+", identityPluralize)
	require.Error(t, err)
}

func TestValidateRejectsUnbalancedAlternationPlaceholders(t *testing.T) {
	err := Validate("(gives %item%|gave)", identityPluralize)
	require.Error(t, err)
	var mp *MalformedPatternError
	require.ErrorAs(t, err, &mp)
	assert.Contains(t, mp.Reason, "unbalanced alternation placeholder counts")
}

func TestValidateAcceptsBalancedAlternationPlaceholders(t *testing.T) {
	require.NoError(t, Validate("(gives %item% to %player%|gave %item% to %player%)", identityPluralize))
}
