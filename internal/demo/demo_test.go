package demo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/exprscript/lang/internal/candidate"
	"github.com/exprscript/lang/internal/diag"
	"github.com/exprscript/lang/internal/expr"
)

func newDriver() *candidate.Driver {
	return candidate.New(Registry{}, Literals{}, Types{CurrentWorld: "overworld"}, Pluralize, true)
}

func sink() *diag.Sink { return diag.NewRoot(zap.NewNop()) }

func parseExpression(d *candidate.Driver, input string) (expr.Expr, error) {
	defaultError := fmt.Sprintf("%q could not be understood", input)
	return d.ParseExpression(input, Registry{}.Expressions(), false, defaultError, sink())
}

func TestWorldFallsBackToDefault(t *testing.T) {
	v, err := parseExpression(newDriver(), "the world")
	require.NoError(t, err)
	assert.Equal(t, "overworld", v.(*worldExpr).World)
}

func TestWorldBindsQuotedLiteral(t *testing.T) {
	v, err := parseExpression(newDriver(), `world of world "Nether"`)
	require.NoError(t, err)
	assert.Equal(t, "Nether", v.(*worldExpr).World)
}

func TestGiveBindsBothPlaceholders(t *testing.T) {
	v, err := parseExpression(newDriver(), "give diamond sword to alice")
	require.NoError(t, err)
	g := v.(*giveExpr)
	assert.Equal(t, "diamond sword", g.Item)
	assert.Equal(t, "alice", g.Player)
}

func TestGiveVerbBindsThreeSlotsInOrder(t *testing.T) {
	v, err := parseExpression(newDriver(), "alice gives sword to bob")
	require.NoError(t, err)
	g := v.(*giveVerbExpr)
	assert.Equal(t, "alice", g.Giver)
	assert.Equal(t, "sword", g.Item)
	assert.Equal(t, "bob", g.Receiver)
}

func TestSpawnUnknownEntityTypeIsNotAVariable(t *testing.T) {
	_, err := parseExpression(newDriver(), "spawn quxblarg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quxblarg")
}

func TestSpawnKnownEntityType(t *testing.T) {
	v, err := parseExpression(newDriver(), "spawn zombie")
	require.NoError(t, err)
	assert.Equal(t, "zombie", v.(*spawnExpr).EntityType)
}
