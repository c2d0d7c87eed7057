package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	warnings []string
}

func (f *fakeSink) Warning(msg string) { f.warnings = append(f.warnings, msg) }

func TestSplitAndList(t *testing.T) {
	sink := &fakeSink{}
	lit := Split("a, b and c", sink, true)
	assert.Equal(t, []string{"a", "b", "c"}, lit.Parts)
	assert.True(t, lit.IsAnd)
	assert.Empty(t, sink.warnings)
}

func TestSplitBareCommasDefaultsToAnd(t *testing.T) {
	sink := &fakeSink{}
	lit := Split("a, b, c", sink, true)
	assert.Equal(t, []string{"a", "b", "c"}, lit.Parts)
	assert.True(t, lit.IsAnd)
	require.Len(t, sink.warnings, 1)
	assert.Contains(t, sink.warnings[0], "missing")
}

func TestSplitMixedConjunctionsDefaultsToAnd(t *testing.T) {
	sink := &fakeSink{}
	lit := Split("a and b or c", sink, true)
	assert.Equal(t, []string{"a", "b", "c"}, lit.Parts)
	assert.True(t, lit.IsAnd)
	require.Len(t, sink.warnings, 1)
	assert.Contains(t, sink.warnings[0], "multiple")
}

func TestSplitQuotedCommaIsAtomic(t *testing.T) {
	sink := &fakeSink{}
	lit := Split(`"a, b" and c`, sink, true)
	assert.Equal(t, []string{`"a, b"`, "c"}, lit.Parts)
	assert.True(t, lit.IsAnd)
	assert.Empty(t, sink.warnings)
}

func TestSplitOrList(t *testing.T) {
	sink := &fakeSink{}
	lit := Split("a or b", sink, true)
	assert.Equal(t, []string{"a", "b"}, lit.Parts)
	assert.False(t, lit.IsAnd)
}

func TestSplitSinglePart(t *testing.T) {
	sink := &fakeSink{}
	lit := Split("alice", sink, true)
	assert.Equal(t, []string{"alice"}, lit.Parts)
	assert.Empty(t, sink.warnings)
}

func TestSplitWithoutQuoteAwarenessSplitsInsideQuotes(t *testing.T) {
	sink := &fakeSink{}
	lit := Split(`"a, b" and c`, sink, false)
	assert.Equal(t, []string{`"a`, `b"`, "c"}, lit.Parts)
	assert.True(t, lit.IsAnd)
	assert.Empty(t, sink.warnings)
}
